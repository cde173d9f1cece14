package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/compozy/members/pkg/config"
)

func membersServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		role := "member"
		if i%5 == 1 {
			role = "admin"
		}
		items = append(items, fmt.Sprintf(
			`{"id":"%d","name":"User %d","email":"user%d@mailinator.com","role":"%s"}`, i, i, i, role,
		))
	}
	body := "[" + strings.Join(items, ",") + "]"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := RootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--env-file", "", "--log-level", "disabled"}, args...))
	err := root.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("Should print the first page as JSON", func(t *testing.T) {
		srv := membersServer(t, 25)

		out, _, err := runRoot(t, "--format", "json", "--source-url", srv.URL)

		require.NoError(t, err)
		assert.Equal(t, int64(25), gjson.Get(out, "total").Int())
		assert.Equal(t, int64(3), gjson.Get(out, "total_pages").Int())
		assert.Equal(t, int64(10), gjson.Get(out, "items.#").Int())
		assert.Equal(t, "1", gjson.Get(out, "items.0.id").String())
	})

	t.Run("Should apply search and page flags", func(t *testing.T) {
		srv := membersServer(t, 25)

		out, _, err := runRoot(t, "table", "--format", "json", "--source-url", srv.URL, "--search", "ADMIN", "--page", "9")

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", gjson.Get(out, "search").String())
		assert.Equal(t, int64(5), gjson.Get(out, "total").Int())
		assert.Equal(t, int64(1), gjson.Get(out, "page").Int())
	})

	t.Run("Should honor the page size flag", func(t *testing.T) {
		srv := membersServer(t, 25)

		out, _, err := runRoot(t, "--format", "json", "--source-url", srv.URL, "--page-size", "5", "--page", "5")

		require.NoError(t, err)
		assert.Equal(t, int64(5), gjson.Get(out, "total_pages").Int())
		assert.Equal(t, "21", gjson.Get(out, "items.0.id").String())
	})

	t.Run("Should print an empty table when the feed fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		out, _, err := runRoot(t, "--format", "json", "--source-url", srv.URL)

		require.NoError(t, err)
		assert.Equal(t, int64(0), gjson.Get(out, "total").Int())
		assert.Equal(t, int64(1), gjson.Get(out, "page").Int())
	})

	t.Run("Should reject an invalid source URL", func(t *testing.T) {
		_, stderr, err := runRoot(t, "--format", "json", "--source-url", "not a url")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
		assert.True(t, gjson.Valid(strings.TrimSpace(stderr)))
	})

	t.Run("Should read values from a YAML file", func(t *testing.T) {
		srv := membersServer(t, 25)
		cfgPath := filepath.Join(t.TempDir(), "members.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("table:\n  page_size: 20\n"), 0o600))

		out, _, err := runRoot(t, "--config", cfgPath, "--format", "json", "--source-url", srv.URL)

		require.NoError(t, err)
		assert.Equal(t, int64(20), gjson.Get(out, "page_size").Int())
		assert.Equal(t, int64(2), gjson.Get(out, "total_pages").Int())
	})
}

func TestConfigShowCommand(t *testing.T) {
	t.Run("Should report where each value came from", func(t *testing.T) {
		out, _, err := runRoot(t, "config", "show", "--format", "json", "--page-size", "15")

		require.NoError(t, err)
		entry := gjson.Get(out, `#(key=="table.page_size")`)
		assert.Equal(t, "15", entry.Get("value").String())
		assert.Equal(t, string(config.SourceCLI), entry.Get("source").String())
		assert.Equal(t, string(config.SourceDefault), gjson.Get(out, `#(key=="table.sibling_count").source`).String())
	})
}

func TestExtractCLIFlags(t *testing.T) {
	t.Run("Should only collect changed configuration flags", func(t *testing.T) {
		root := RootCmd()
		require.NoError(t, root.ParseFlags([]string{"--retries", "3", "--search", "x", "--no-color"}))

		flags := extractCLIFlags(root)

		assert.Equal(t, map[string]any{"retries": 3, "no-color": true}, flags)
	})
}

func TestIsPathWithinDirectory(t *testing.T) {
	t.Run("Should accept nested paths and reject escapes", func(t *testing.T) {
		dir := t.TempDir()

		assert.True(t, isPathWithinDirectory(filepath.Join(dir, "a", ".env"), dir))
		assert.True(t, isPathWithinDirectory(dir, dir))
		assert.False(t, isPathWithinDirectory(filepath.Join(dir, "..", "other"), dir))
	})
}
