// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultSessionLimit caps a review session when the config doesn't say otherwise.
const DefaultSessionLimit = 20

// FileConfig represents the TOML configuration file. All fields are
// optional; absent values fall back to defaults.
type FileConfig struct {
	Database DatabaseConfig `toml:"database"`
	Review   ReviewConfig   `toml:"review"`
}

// DatabaseConfig maps database-related settings.
type DatabaseConfig struct {
	Path *string `toml:"path"`
}

// ReviewConfig maps review-session settings.
type ReviewConfig struct {
	SessionLimit *int `toml:"session-limit"`
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdgConfigHome(), "inkwell", "config.toml")
}

// Load reads a TOML config from the given path. A missing file is not
// an error; the zero config is returned.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SessionLimit returns the configured review session cap, or the default.
func (c FileConfig) SessionLimit() int {
	if c.Review.SessionLimit != nil && *c.Review.SessionLimit >= 0 {
		return *c.Review.SessionLimit
	}
	return DefaultSessionLimit
}

// DBPath returns the configured database path, or "" if unset.
func (c FileConfig) DBPath() string {
	if c.Database.Path != nil {
		return *c.Database.Path
	}
	return ""
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
