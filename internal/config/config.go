// Package config loads the onboard runtime configuration. Settings come from
// .onboard/config.json when present, with environment variables taking
// precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config represents the flat onboard configuration.
type Config struct {
	// DBPath is the SQLite database file. Defaults to ~/.onboard/onboarding.db.
	DBPath string `json:"db_path,omitempty" env:"ONBOARDING_DB_PATH"`
}

// Load reads .onboard/config.json from the specified directory (a missing
// file is not an error), applies environment overrides, and fills defaults.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, ".onboard", "config.json")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env config: %w", err)
	}

	if cfg.DBPath == "" {
		defaultPath, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = defaultPath
	}

	return cfg, nil
}

// Save writes config.json to the directory.
func Save(dir string, cfg *Config) error {
	confDir := filepath.Join(dir, ".onboard")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		return fmt.Errorf("failed to create .onboard dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(confDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDBPath returns the default database file under the home directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".onboard", "onboarding.db"), nil
}
