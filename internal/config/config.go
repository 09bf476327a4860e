// Package config loads the optional wtt configuration file.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable wtt settings.
type Config struct {
	// DataFile overrides the default timesheet path
	// (~/.work_time_tracker.json) when non-empty.
	DataFile string `json:"data_file"`
}

// Load reads the global config file. Returns a zero Config (all
// defaults) if the file is absent.
// Path: $XDG_CONFIG_HOME/wtt/config.json or ~/.config/wtt/config.json
func Load() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(dir, "config.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// configDir returns the wtt-specific XDG config directory.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "wtt"), nil
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
