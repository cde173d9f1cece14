package table

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/compozy/members/cli/cmd"
	"github.com/compozy/members/cli/helpers"
	usertable "github.com/compozy/members/engine/table"
	"github.com/compozy/members/pkg/config"
	"github.com/compozy/members/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	flagSearch = "search"
	flagPage   = "page"
)

// NewTableCommand creates the table command
func NewTableCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "table",
		Short: "Browse, search and edit the members table",
		Long: `Fetch the members feed once and show it as a paginated table.

In an interactive terminal the table can be searched, edited and pruned.
Otherwise the requested page is printed as JSON.`,
		RunE: ExecuteTableCommand,
	}
	AddFlags(command)
	return command
}

// AddFlags registers the table flags on command
func AddFlags(command *cobra.Command) {
	command.Flags().StringP(flagSearch, "s", "", "Initial search term (name, email or role)")
	command.Flags().IntP(flagPage, "p", 1, "Initial page, clamped into range")
}

// ExecuteTableCommand runs the table command in the detected mode
func ExecuteTableCommand(cobraCmd *cobra.Command, args []string) error {
	return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{
		RequireClient: true,
	}, cmd.ModeHandlers{
		JSON: handleTableJSON,
		TUI:  handleTableTUI,
	}, args)
}

type tableFlags struct {
	search string
	page   int
}

func readFlags(cobraCmd *cobra.Command) tableFlags {
	return tableFlags{
		search: helpers.GetFlagStringWithDefault(cobraCmd, flagSearch, ""),
		page:   helpers.GetFlagIntWithDefault(cobraCmd, flagPage, 1),
	}
}

func handleTableJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	log := logger.FromContext(ctx)
	log.Debug("rendering members table in JSON mode")
	flags := readFlags(cobraCmd)
	cfg := config.FromContext(ctx)
	loader := usertable.NewLoader(executor.GetMembersClient())
	tbl := usertable.New(cfg.Table.PageSize)
	tbl.Load(loader.Load(ctx))
	tbl.SetSearch(flags.search)
	tbl.SetPage(flags.page)
	return helpers.WriteJSON(cobraCmd.OutOrStdout(), tbl.Snapshot(), executor.UseColor())
}

func handleTableTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	log := logger.FromContext(ctx)
	log.Debug("rendering members table in TUI mode")
	flags := readFlags(cobraCmd)
	cfg := config.FromContext(ctx)
	m := NewUsersModel(ctx, usertable.NewLoader(executor.GetMembersClient()), cfg, flags.search, flags.page)
	defer m.Quit()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Error(); err != nil {
		return err
	}
	log.Debug("members table closed", "remaining", m.Remaining())
	return nil
}
