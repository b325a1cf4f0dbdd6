// Package config resolves the TimeMate home directory and the paths that
// hang off it. Precedence: TIMEMATE_HOME environment variable, then the
// home override saved by set-home, then ~/.timemate.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds application settings.
type Config struct {
	Home string `env:"TIMEMATE_HOME"`
}

// overrideFile is the JSON file written by set-home, relative to the
// default home directory.
const overrideFile = "config.json"

type override struct {
	Home string `json:"home"`
}

// DefaultHome returns ~/.timemate.
func DefaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".timemate"), nil
}

// Load resolves the effective configuration.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Home != "" {
		return cfg, nil
	}

	defaultHome, err := DefaultHome()
	if err != nil {
		return cfg, err
	}

	if saved, err := readOverride(defaultHome); err == nil && saved != "" {
		cfg.Home = saved
		return cfg, nil
	}

	cfg.Home = defaultHome
	return cfg, nil
}

// DatabasePath returns the SQLite database path under the home directory.
func (c Config) DatabasePath() string {
	return filepath.Join(c.Home, "timemate.db")
}

// LogDir returns the log directory under the home directory.
func (c Config) LogDir() string {
	return filepath.Join(c.Home, "log")
}

// SetHome persists a home directory override, or clears it when home is
// empty.
func SetHome(home string) error {
	defaultHome, err := DefaultHome()
	if err != nil {
		return err
	}
	path := filepath.Join(defaultHome, overrideFile)

	if home == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", home, err)
	}
	if err := os.MkdirAll(defaultHome, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(override{Home: home})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readOverride(defaultHome string) (string, error) {
	data, err := os.ReadFile(filepath.Join(defaultHome, overrideFile))
	if err != nil {
		return "", err
	}
	var o override
	if err := json.Unmarshal(data, &o); err != nil {
		return "", err
	}
	return o.Home, nil
}
