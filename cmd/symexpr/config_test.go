package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file in a temporary directory and returns its
// name.
func writeConfig(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "symexpr.yaml")
	require.NoError(t, os.WriteFile(name, []byte(data), 0o644))
	return name
}

func TestParseConfig(t *testing.T) {
	cases := []struct {
		name string
		data string
		want func(*Config)
	}{
		{"empty", "", func(*Config) {}},
		{"depth", "max_depth: 8\n", func(c *Config) { c.MaxDepth = 8 }},
		{"output", "max_output: -1\n", func(c *Config) { c.MaxOutput = -1 }},
		{"prompt", "prompt: 'expr> '\n", func(c *Config) { c.Prompt = "expr> " }},
		{"no-history", "history: ''\n", func(c *Config) { c.History = "" }},
		{
			"workspace",
			"workspace:\n  x: 1 + 2\n  f: g(x)\n",
			func(c *Config) { c.Workspace = map[string]string{"x": "1 + 2", "f": "g(x)"} },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want := DefaultConfig()
			c.want(&want)
			got, err := ParseConfig([]byte(c.data))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"unknown", "max_dpeth: 3\n", "max_dpeth"},
		{"type", "max_depth: deep\n", "bad config"},
		{"zero-depth", "max_depth: 0\n", "must be positive"},
		{"negative-depth", "max_depth: -4\n", "must be positive"},
		{"syntax", "max_depth: [\n", "bad config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(c.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	name := writeConfig(t, "max_depth: 16\nprompt: '$ '\n")
	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	want := DefaultConfig()
	want.MaxDepth = 16
	want.Prompt = "$ "
	assert.Equal(t, want, cfg)

	bad := writeConfig(t, "nope: 1\n")
	_, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory:", err)
	}
	cases := []struct {
		hist string
		want string
	}{
		{"", ""},
		{"/tmp/h", "/tmp/h"},
		{"rel/h", "rel/h"},
		{"~/.h", filepath.Join(home, ".h")},
	}
	for _, c := range cases {
		cfg := Config{History: c.hist}
		assert.Equal(t, c.want, cfg.historyPath(), "history %q", c.hist)
	}
}
