package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/symexpr"
)

// Config holds settings that can come from a YAML file.
type Config struct {
	// MaxDepth is the parser recursion limit.
	MaxDepth int `yaml:"max_depth"`
	// MaxOutput bounds printed expressions in bytes. Zero or negative means
	// no limit.
	MaxOutput int `yaml:"max_output"`
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// History is the REPL history file. A leading ~/ means the home
	// directory. Empty disables history.
	History string `yaml:"history"`
	// Workspace maps names to expressions to bind when the REPL starts.
	Workspace map[string]string `yaml:"workspace"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  symexpr.DefaultMaxDepth,
		MaxOutput: symexpr.DefaultTextLimit,
		Prompt:    "> ",
		History:   "~/.symexpr_history",
	}
}

// LoadConfig reads a config file. Settings missing from the file keep their
// defaults.
func LoadConfig(name string) (Config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't read config: %w", err)
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data over the defaults. Unknown keys are
// errors.
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("bad config: %w", err)
	}
	if cfg.MaxDepth <= 0 {
		return Config{}, fmt.Errorf("max_depth must be positive, not %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// historyPath expands a leading ~/ in the history file name.
func (cfg Config) historyPath() string {
	h := cfg.History
	if !strings.HasPrefix(h, "~/") {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, h[2:])
}
