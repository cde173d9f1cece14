package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/compozy/members/pkg/config"
)

func loadedContext(t *testing.T, environ []string, sources ...config.Source) context.Context {
	t.Helper()
	svc := config.NewService(config.WithEnviron(func() []string { return environ }))
	cfg, err := svc.Load(t.Context(), sources...)
	require.NoError(t, err)
	ctx := config.ContextWithConfig(t.Context(), cfg)
	return config.ContextWithService(ctx, svc)
}

func TestEntries(t *testing.T) {
	t.Run("Should list every key sorted with its source", func(t *testing.T) {
		ctx := loadedContext(t,
			[]string{"MEMBERS_TABLE_PAGE_SIZE=25"},
			config.NewCLIProvider(map[string]any{"source-url": "http://localhost:9000/members.json"}),
		)

		entries := Entries(ctx)

		require.Len(t, entries, 12)
		keys := make([]string, len(entries))
		byKey := make(map[string]Entry, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
			byKey[e.Key] = e
		}
		assert.IsNonDecreasing(t, keys)
		assert.Equal(t, Entry{Key: "table.page_size", Value: "25", Source: config.SourceEnv, Env: "MEMBERS_TABLE_PAGE_SIZE"}, byKey["table.page_size"])
		assert.Equal(t, config.SourceCLI, byKey["source.url"].Source)
		assert.Equal(t, "http://localhost:9000/members.json", byKey["source.url"].Value)
		assert.Equal(t, Entry{Key: "source.timeout", Value: "30s", Source: config.SourceDefault, Env: "MEMBERS_SOURCE_TIMEOUT"}, byKey["source.timeout"])
	})

	t.Run("Should fall back to defaults without a service", func(t *testing.T) {
		entries := Entries(t.Context())

		for _, e := range entries {
			assert.Equal(t, config.SourceDefault, e.Source, e.Key)
		}
	})
}

func TestConfigShow(t *testing.T) {
	run := func(t *testing.T, format string, args ...string) string {
		t.Helper()
		ctx := loadedContext(t, []string{"MEMBERS_FORMAT=" + format})
		command := NewConfigShowCommand()
		var out bytes.Buffer
		command.SetOut(&out)
		command.SetErr(&out)
		command.SetArgs(args)
		require.NoError(t, command.ExecuteContext(ctx))
		return out.String()
	}

	t.Run("Should print JSON entries", func(t *testing.T) {
		out := run(t, "json")

		assert.True(t, gjson.Valid(out))
		assert.Equal(t, int64(12), gjson.Get(out, "#").Int())
		assert.Equal(t, "env", gjson.Get(out, `#(key=="cli.default_format").source`).String())
		assert.Equal(t, "MEMBERS_FORMAT", gjson.Get(out, `#(key=="cli.default_format").env`).String())
	})

	t.Run("Should print a table", func(t *testing.T) {
		out := run(t, "tui")

		assert.Contains(t, out, "KEY")
		assert.Contains(t, out, "SOURCE")
		assert.Contains(t, out, "MEMBERS_SOURCE_URL")
		assert.Contains(t, out, config.DefaultSourceURL)
	})

	t.Run("Should print YAML on request", func(t *testing.T) {
		var entries []Entry
		require.NoError(t, yaml.Unmarshal([]byte(run(t, "json", "--yaml")), &entries))

		assert.Len(t, entries, 12)
	})
}

func TestNewConfigCommand(t *testing.T) {
	t.Run("Should register the show subcommand", func(t *testing.T) {
		command := NewConfigCommand()

		found, _, err := command.Find([]string{"show"})

		require.NoError(t, err)
		assert.Equal(t, "show", found.Name())
		assert.IsType(t, &cobra.Command{}, found)
	})
}
