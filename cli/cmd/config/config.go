package config

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/compozy/members/cli/cmd"
	"github.com/compozy/members/cli/helpers"
	"github.com/compozy/members/cli/tui/styles"
	"github.com/compozy/members/pkg/config"
	"github.com/compozy/members/pkg/logger"
)

const flagYAML = "yaml"

// NewConfigCommand creates the config command using the unified command pattern
func NewConfigCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Configuration diagnostics",
		Long:  `Inspect the effective configuration of the members CLI.`,
	}
	command.AddCommand(NewConfigShowCommand())
	return command
}

// NewConfigShowCommand creates the config show subcommand
func NewConfigShowCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration values and their sources",
		Long: `Display the effective configuration together with the source
(default, yaml, env or cli) that provided each value.`,
		RunE: executeConfigShowCommand,
	}
	command.Flags().Bool(flagYAML, false, "Print the configuration as YAML")
	return command
}

func executeConfigShowCommand(cobraCmd *cobra.Command, args []string) error {
	return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
		JSON: handleConfigShowJSON,
		TUI:  handleConfigShowTUI,
	}, args)
}

// Entry is one configuration key as shown by config show
type Entry struct {
	Key    string            `json:"key"    yaml:"key"`
	Value  string            `json:"value"  yaml:"value"`
	Source config.SourceType `json:"source" yaml:"source"`
	Env    string            `json:"env"    yaml:"env"`
}

func handleConfigShowJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	logger.FromContext(ctx).Debug("executing config show command in JSON mode")
	entries := Entries(ctx)
	if asYAML, _ := cobraCmd.Flags().GetBool(flagYAML); asYAML {
		return writeYAML(cobraCmd.OutOrStdout(), entries)
	}
	return helpers.WriteJSON(cobraCmd.OutOrStdout(), entries, executor.UseColor())
}

func handleConfigShowTUI(ctx context.Context, cobraCmd *cobra.Command, _ *cmd.CommandExecutor, _ []string) error {
	logger.FromContext(ctx).Debug("executing config show command in TUI mode")
	entries := Entries(ctx)
	if asYAML, _ := cobraCmd.Flags().GetBool(flagYAML); asYAML {
		return writeYAML(cobraCmd.OutOrStdout(), entries)
	}
	_, err := fmt.Fprintln(cobraCmd.OutOrStdout(), renderTable(entries))
	return err
}

// Entries lists every configuration key in the context configuration,
// sorted by key, with the source reported by the configuration service.
func Entries(ctx context.Context) []Entry {
	cfg := config.FromContext(ctx)
	svc := config.ServiceFromContext(ctx)
	flat := flattenConfig(cfg)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		source := config.SourceDefault
		if svc != nil {
			if s := svc.GetSource(k); s != "" {
				source = s
			}
		}
		entries = append(entries, Entry{
			Key:    k,
			Value:  flat[k],
			Source: source,
			Env:    config.GetEnvVarForConfigPath(k),
		})
	}
	return entries
}

func flattenConfig(cfg *config.Config) map[string]string {
	return map[string]string{
		"source.url":           cfg.Source.URL,
		"source.timeout":       cfg.Source.Timeout.String(),
		"source.retries":       strconv.Itoa(cfg.Source.Retries),
		"table.page_size":      strconv.Itoa(cfg.Table.PageSize),
		"table.boundary_count": strconv.Itoa(cfg.Table.BoundaryCount),
		"table.sibling_count":  strconv.Itoa(cfg.Table.SiblingCount),
		"cli.default_format":   cfg.CLI.DefaultFormat,
		"cli.no_color":         strconv.FormatBool(cfg.CLI.NoColor),
		"cli.log_file":         cfg.CLI.LogFile,
		"runtime.log_level":    cfg.Runtime.LogLevel,
		"runtime.log_json":     strconv.FormatBool(cfg.Runtime.LogJSON),
		"runtime.log_source":   strconv.FormatBool(cfg.Runtime.LogSource),
	}
}

func writeYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func renderTable(entries []Entry) string {
	headerStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	sourceStyle := cellStyle.Foreground(styles.Muted)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Border)).
		Headers("KEY", "VALUE", "SOURCE", "ENV").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return sourceStyle
			default:
				return cellStyle
			}
		})
	for _, e := range entries {
		t.Row(e.Key, e.Value, string(e.Source), e.Env)
	}
	return t.Render()
}
