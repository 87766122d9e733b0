// Package config resolves the snapshot path and display options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDBPath overrides every other snapshot location when set.
const EnvDBPath = "CHEATNOTE_DB"

// Config holds the optional settings read from the user's config file.
type Config struct {
	// DBPath overrides the default snapshot location. Lower precedence than
	// the --db flag and CHEATNOTE_DB.
	DBPath string `yaml:"db_path"`
	// Color is "auto", "always", or "never".
	Color string `yaml:"color"`
}

// Load reads the config file if it exists. A missing file yields a zero
// Config; a file that exists but cannot be parsed is an error.
func Load() (Config, error) {
	var cfg Config
	path := configPath()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cheatnote", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "cheatnote", "config.yaml")
}

// DBPath resolves the snapshot location. Precedence: the flag value, the
// CHEATNOTE_DB environment variable, the config file, the XDG data directory,
// then a file in the current directory as a last resort.
func DBPath(flag string, cfg Config) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return env
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cheatnote", "cheatnote.db")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "cheatnote.db"
	}
	return filepath.Join(home, ".local", "share", "cheatnote", "cheatnote.db")
}
