package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/domain/build"
	"github.com/hH-13/tilde/internal/infrastructure/config"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configFile = ""
		configForce = false
		genDocsOutputDir = ""
		genDocsFormat = docsFormatMan
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSkipsApp(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"version"}, true},
		{[]string{"gen-docs"}, true},
		{[]string{"config", "schema"}, true},
		{[]string{"config", "init"}, true},
		{[]string{"config", "check"}, false},
		{[]string{"resolve"}, false},
		{[]string{"serve"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			found, _, err := rootCmd.Find(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, skipsApp(found))
		})
	}
}

func TestQueryArg(t *testing.T) {
	assert.Equal(t, "g'golang generics", queryArg([]string{"g'golang", "generics"}))
	assert.Equal(t, "", queryArg(nil))
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3"})

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tilde v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestConfigSchemaCommand(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "tilde configuration", schema["title"])
	assert.Contains(t, out, "search_delimiter")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	out, err = execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))

	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[[commands]]")
}

func TestQueryTableSection(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Query.SearchDelimiter = "!"
	cfg.HelpKey = "??"

	section := queryTableSection(cfg)

	assert.Contains(t, section, "key!terms to search it")
	assert.Contains(t, section, "key/path to open a path")
	assert.Contains(t, section, "https://www.bing.com  (search /search?q={})")
	assert.Contains(t, section, "q -> bin, yah, eco, ddg, *")
	assert.Contains(t, section, `Typing "??" alone`)
}

func TestGenDocsDocumentsConfiguredTable(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	cfg := config.DefaultConfig()
	cfg.Commands = append(cfg.Commands, config.CommandConfig{
		Key:    "wp",
		Name:   "Wikipedia",
		URL:    "https://en.wikipedia.org",
		Search: "/w/index.php?search={}",
	})
	cfg.Scripts = map[string][]string{"ref": {"wp", "*"}}
	path := filepath.Join(root, "tilde.toml")
	require.NoError(t, config.WriteConfigOrdered(cfg, path))

	outDir := filepath.Join(root, "docs")
	out, err := execute(t, "gen-docs", "--format", "markdown", "--output", outDir, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "tilde.md")
	assert.Contains(t, out, "tilde_resolve.md")

	page, err := os.ReadFile(filepath.Join(outDir, "tilde.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "QUERY TABLE")
	assert.Regexp(t, `wp\s+Wikipedia\s+https://en\.wikipedia\.org  \(search /w/index\.php\?search=\{\}\)`, string(page))
	assert.Contains(t, string(page), "ref -> wp, *")
	assert.NotContains(t, rootCmd.Long, "QUERY TABLE", "root help is restored after generation")
}

func TestGenDocsRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "gen-docs", "--format", "pdf", "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "pdf"`)
}
