package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all dialogue-lint configuration.
type Config struct {
	// RoleMarker scopes the hollow-response detector to speakers whose label
	// contains this substring. Empty disables hollow detection.
	RoleMarker string `toml:"role_marker"`

	Fix     FixConfig     `toml:"fix"`
	History HistoryConfig `toml:"history"`
	Watch   WatchConfig   `toml:"watch"`
}

type FixConfig struct {
	// ResetCarryOnNonDialogue clears the fixer's echo carry-state on content
	// lines without the dialogue separator. Default false: only structural
	// lines reset it, so wrapped continuation lines keep echo tracking.
	ResetCarryOnNonDialogue bool `toml:"reset_carry_on_nondialogue"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // empty: <state dir>/history.db
}

type WatchConfig struct {
	DebounceMS int      `toml:"debounce_ms"`
	Extensions []string `toml:"extensions"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RoleMarker: "Gemini",
		Fix:        FixConfig{ResetCarryOnNonDialogue: false},
		History:    HistoryConfig{Enabled: true},
		Watch:      WatchConfig{DebounceMS: 500, Extensions: []string{".txt"}},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(StateDir(), "history.db")
	} else {
		cfg.History.Path = expandHome(cfg.History.Path)
	}
	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = 500
	}

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "dialogue-lint", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "dialogue-lint", "config.toml"))
	}

	return paths
}

// StateDir returns the dialogue-lint state directory.
// Uses $XDG_STATE_HOME/dialogue-lint if set, otherwise ~/.local/state/dialogue-lint.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "dialogue-lint")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "dialogue-lint")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
