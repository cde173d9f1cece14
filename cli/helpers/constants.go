package helpers

// OutputFormat represents different output formats
type OutputFormat string

const (
	OutputFormatAuto OutputFormat = "auto"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatTUI  OutputFormat = "tui"
)

// Persistent flag names shared by every command
const (
	FlagConfig    = "config"
	FlagEnvFile   = "env-file"
	FlagFormat    = "format"
	FlagNoColor   = "no-color"
	FlagSourceURL = "source-url"
	FlagTimeout   = "timeout"
	FlagRetries   = "retries"
	FlagPageSize  = "page-size"
	FlagLogFile   = "log-file"
	FlagLogLevel  = "log-level"
	FlagLogJSON   = "log-json"
	FlagLogSource = "log-source"
)
