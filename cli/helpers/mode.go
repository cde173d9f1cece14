package helpers

import (
	"os"

	"github.com/compozy/members/cli/tui/models"
	"github.com/compozy/members/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var ciEnvVars = []string{
	"CI",
	"JENKINS_HOME",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",           // Azure DevOps
	"BITBUCKET_COMMIT",   // Bitbucket Pipelines
	"CODEBUILD_BUILD_ID", // AWS CodeBuild
	"TEAMCITY_VERSION",
	"BUILD_NUMBER",
	"CONTINUOUS_INTEGRATION",
}

// isRunningInCI checks if we're running in a CI/CD environment
func isRunningInCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// isInteractiveEnvironment checks if both ends of the terminal belong to a person
func isInteractiveEnvironment() bool {
	if isRunningInCI() {
		return false
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}

// ResolveMode maps a configured format onto an output mode. The auto format
// picks the TUI only for interactive sessions.
func ResolveMode(format string, interactive bool) models.Mode {
	switch OutputFormat(format) {
	case OutputFormatJSON:
		return models.ModeJSON
	case OutputFormatTUI:
		return models.ModeTUI
	}
	if interactive {
		return models.ModeTUI
	}
	return models.ModeJSON
}

// DetectMode detects the output mode from the configuration in the command context
func DetectMode(cmd *cobra.Command) models.Mode {
	cfg := config.FromContext(cmd.Context())
	return ResolveMode(cfg.CLI.DefaultFormat, isInteractiveEnvironment())
}

// ShouldUseColor determines if colored output should be used
func ShouldUseColor(cmd *cobra.Command) bool {
	cfg := config.FromContext(cmd.Context())
	if cfg.CLI.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isTerminal(os.Stdout) || isRunningInCI() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}
