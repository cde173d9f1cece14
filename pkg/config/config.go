package config

import (
	"context"
	"time"
)

// DefaultSourceURL is the members feed the table is populated from.
const DefaultSourceURL = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// Config represents the complete configuration for the members CLI.
type Config struct {
	Source  SourceConfig  `koanf:"source"  validate:"required"`
	Table   TableConfig   `koanf:"table"   validate:"required"`
	CLI     CLIConfig     `koanf:"cli"`
	Runtime RuntimeConfig `koanf:"runtime" validate:"required"`
}

// SourceConfig describes where user records are fetched from.
type SourceConfig struct {
	URL     string        `koanf:"url"     validate:"required,fetch_url" env:"MEMBERS_SOURCE_URL"`
	Timeout time.Duration `koanf:"timeout" validate:"min=0"              env:"MEMBERS_SOURCE_TIMEOUT"`
	Retries int           `koanf:"retries" validate:"min=0,max=10"       env:"MEMBERS_SOURCE_RETRIES"`
}

// TableConfig controls pagination of the user table.
type TableConfig struct {
	PageSize      int `koanf:"page_size"      validate:"min=1,max=500" env:"MEMBERS_TABLE_PAGE_SIZE"`
	BoundaryCount int `koanf:"boundary_count" validate:"min=0,max=10"  env:"MEMBERS_TABLE_BOUNDARY_COUNT"`
	SiblingCount  int `koanf:"sibling_count"  validate:"min=0,max=10"  env:"MEMBERS_TABLE_SIBLING_COUNT"`
}

// CLIConfig contains presentation settings for the command line.
type CLIConfig struct {
	DefaultFormat string `koanf:"default_format" validate:"oneof=auto json tui" env:"MEMBERS_FORMAT"`
	NoColor       bool   `koanf:"no_color"                                       env:"MEMBERS_NO_COLOR"`
	// LogFile receives logs while the TUI owns the terminal. Empty discards them.
	LogFile string `koanf:"log_file" env:"MEMBERS_LOG_FILE"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	LogLevel  string `koanf:"log_level"  validate:"oneof=debug info warn error disabled" env:"MEMBERS_LOG_LEVEL"`
	LogJSON   bool   `koanf:"log_json"                                                  env:"MEMBERS_LOG_JSON"`
	LogSource bool   `koanf:"log_source"                                                env:"MEMBERS_LOG_SOURCE"`
}

// Service loads and validates configuration.
type Service interface {
	Load(ctx context.Context, sources ...Source) (*Config, error)
	Validate(config *Config) error
	GetSource(key string) SourceType
	Sources() map[string]SourceType
}

// Source provides one layer of configuration values.
type Source interface {
	Load() (map[string]any, error)
	Type() SourceType
}

// SourceType identifies where a configuration value came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Metadata records which source last set each key.
type Metadata struct {
	Sources  map[string]SourceType
	LoadedAt time.Time
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: 30 * time.Second,
			Retries: 0,
		},
		Table: TableConfig{
			PageSize:      10,
			BoundaryCount: 2,
			SiblingCount:  2,
		},
		CLI: CLIConfig{
			DefaultFormat: "auto",
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}
}
