package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	configcmd "github.com/compozy/members/cli/cmd/config"
	tablecmd "github.com/compozy/members/cli/cmd/table"
	"github.com/compozy/members/cli/helpers"
	"github.com/compozy/members/cli/tui/models"
	"github.com/compozy/members/cli/tui/styles"
	"github.com/compozy/members/pkg/config"
	"github.com/compozy/members/pkg/logger"
	"github.com/compozy/members/pkg/version"
)

// RootCmd builds the members command tree. Running it without a subcommand
// shows the table.
func RootCmd() *cobra.Command {
	var logFile io.Closer
	root := &cobra.Command{
		Use:   "members",
		Short: "Browse and curate a members feed from the terminal",
		Long: `members fetches a JSON list of users once and presents it as a
paginated table that can be searched, edited and pruned in memory.

Interactive terminals get a full-screen table; pipes and CI get JSON.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := SetupGlobalConfig(cmd)
			if err != nil {
				helpers.OutputError(cmd.ErrOrStderr(), err, helpers.DetectMode(cmd))
				return err
			}
			logFile = closer
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
		RunE: tablecmd.ExecuteTableCommand,
	}
	addPersistentFlags(root)
	tablecmd.AddFlags(root)
	root.AddCommand(
		tablecmd.NewTableCommand(),
		configcmd.NewConfigCommand(),
	)
	return root
}

func addPersistentFlags(root *cobra.Command) {
	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.String(helpers.FlagConfig, "", "Path to a YAML configuration file")
	flags.String(helpers.FlagEnvFile, ".env", "Path to an environment file")
	flags.String(helpers.FlagFormat, defaults.CLI.DefaultFormat, "Output format (auto, json, tui)")
	flags.Bool(helpers.FlagNoColor, false, "Disable colored output")
	flags.String(helpers.FlagSourceURL, defaults.Source.URL, "URL of the members JSON feed")
	flags.Duration(helpers.FlagTimeout, defaults.Source.Timeout, "Timeout for fetching the feed")
	flags.Int(helpers.FlagRetries, defaults.Source.Retries, "Retries for transient fetch failures")
	flags.Int(helpers.FlagPageSize, defaults.Table.PageSize, "Rows per page")
	flags.String(helpers.FlagLogFile, "", "Write logs to this file while the table is shown")
	flags.String(helpers.FlagLogLevel, defaults.Runtime.LogLevel, "Log level (debug, info, warn, error, disabled)")
	flags.Bool(helpers.FlagLogJSON, false, "Emit logs as JSON")
	flags.Bool(helpers.FlagLogSource, false, "Include source locations in logs")
}

// SetupGlobalConfig loads the configuration for cmd, attaches it and a logger
// to the command context and applies color settings. The returned closer is
// the log file opened for TUI sessions, if any.
func SetupGlobalConfig(cmd *cobra.Command) (io.Closer, error) {
	if _, err := loadEnvFile(cmd); err != nil {
		return nil, err
	}
	configFile, err := cmd.Flags().GetString(helpers.FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	ctx := cmd.Context()
	svc := config.NewService()
	cfg, err := svc.Load(ctx, config.NewYAMLProvider(configFile), config.NewCLIProvider(extractCLIFlags(cmd)))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = config.ContextWithService(ctx, svc)
	cmd.SetContext(ctx)

	output, closer, err := logOutput(cfg, helpers.DetectMode(cmd))
	if err != nil {
		return nil, err
	}
	log := logger.SetupLogger(cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, cfg.Runtime.LogSource, output)
	cmd.SetContext(logger.ContextWithLogger(ctx, log))
	if !helpers.ShouldUseColor(cmd) {
		styles.DisableColor()
	}
	log.Debug("configuration loaded",
		"source_url", cfg.Source.URL,
		"page_size", cfg.Table.PageSize,
		"loaded_at", time.Now().Format(time.RFC3339),
	)
	return closer, nil
}

// logOutput keeps logs off the terminal while the TUI owns it. JSON mode
// logs to stderr so stdout stays machine readable.
func logOutput(cfg *config.Config, mode models.Mode) (io.Writer, io.Closer, error) {
	if mode != models.ModeTUI {
		return os.Stderr, nil, nil
	}
	if cfg.CLI.LogFile == "" {
		return io.Discard, nil, nil
	}
	f, err := os.OpenFile(cfg.CLI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f, nil
}
