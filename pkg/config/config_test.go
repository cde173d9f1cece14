package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Default(t *testing.T) {
	t.Run("Should return valid default configuration", func(t *testing.T) {
		cfg := Default()

		require.NotNil(t, cfg)
		assert.Equal(t, DefaultSourceURL, cfg.Source.URL)
		assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
		assert.Equal(t, 0, cfg.Source.Retries)
		assert.Equal(t, 10, cfg.Table.PageSize)
		assert.Equal(t, 2, cfg.Table.BoundaryCount)
		assert.Equal(t, 2, cfg.Table.SiblingCount)
		assert.Equal(t, "auto", cfg.CLI.DefaultFormat)
		assert.Equal(t, "info", cfg.Runtime.LogLevel)
	})

	t.Run("Should pass validation", func(t *testing.T) {
		svc := NewService()
		assert.NoError(t, svc.Validate(Default()))
	})
}

func TestConfig_Validation(t *testing.T) {
	t.Run("Should validate page size range", func(t *testing.T) {
		tests := []struct {
			name     string
			pageSize int
			wantErr  bool
		}{
			{"default size", 10, false},
			{"minimum size", 1, false},
			{"maximum size", 500, false},
			{"zero size", 0, true},
			{"too large", 501, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := Default()
				cfg.Table.PageSize = tt.pageSize
				err := NewService().Validate(cfg)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("Should require an absolute http or https source URL", func(t *testing.T) {
		tests := []struct {
			url     string
			wantErr bool
		}{
			{"https://example.com/members.json", false},
			{"http://127.0.0.1:8080/users", false},
			{"ftp://example.com/members.json", true},
			{"/members.json", true},
			{"", true},
		}
		for _, tt := range tests {
			t.Run(tt.url, func(t *testing.T) {
				cfg := Default()
				cfg.Source.URL = tt.url
				err := NewService().Validate(cfg)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("Should reject unknown output formats and log levels", func(t *testing.T) {
		cfg := Default()
		cfg.CLI.DefaultFormat = "yaml"
		assert.Error(t, NewService().Validate(cfg))

		cfg = Default()
		cfg.Runtime.LogLevel = "trace"
		assert.Error(t, NewService().Validate(cfg))
	})

	t.Run("Should reject nil configuration", func(t *testing.T) {
		assert.Error(t, NewService().Validate(nil))
	})
}

func TestGenerateEnvMappings(t *testing.T) {
	t.Run("Should map env tags onto koanf paths", func(t *testing.T) {
		assert.Equal(t, "source.url", GenerateEnvToConfigMap()["MEMBERS_SOURCE_URL"])
		assert.Equal(t, "table.page_size", GenerateEnvToConfigMap()["MEMBERS_TABLE_PAGE_SIZE"])
		assert.Equal(t, "MEMBERS_FORMAT", GetEnvVarForConfigPath("cli.default_format"))
		assert.Empty(t, GetEnvVarForConfigPath("does.not.exist"))
	})
}
