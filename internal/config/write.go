package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the dialogue-lint config directory path.
// Uses $XDG_CONFIG_HOME/dialogue-lint if set, otherwise ~/.config/dialogue-lint.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dialogue-lint")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dialogue-lint")
}

// WriteDefault writes a default config.toml.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault() (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	content := `role_marker = "Gemini"

[fix]
reset_carry_on_nondialogue = false

[history]
enabled = true
# path = "~/.local/state/dialogue-lint/history.db"

[watch]
debounce_ms = 500
extensions = [".txt"]
`

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable display values.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
