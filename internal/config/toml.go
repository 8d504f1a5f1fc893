// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Typing  TypingConfig  `toml:"typing"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// TypingConfig maps pacing and mistake settings.
type TypingConfig struct {
	Speed     *float64 `toml:"wpm"`
	ErrorRate *float64 `toml:"error-rate"`
	Fatigue   *bool    `toml:"fatigue"`
	Countdown *float64 `toml:"countdown"`
	Seed      *int64   `toml:"seed"`
}

// OutputConfig maps display and persistence settings.
type OutputConfig struct {
	Theme    *string `toml:"theme"`
	NoTUI    *bool   `toml:"no-tui"`
	EventLog *string `toml:"event-log"`
	Database *string `toml:"database"`
	NoStore  *bool   `toml:"no-store"`
}

// LoggingConfig maps diagnostic log settings.
type LoggingConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as TOML, creating the parent directory. Nil fields
// are left out of the file.
func SaveConfig(path string, cfg FileConfig) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		if cerr := f.Close(); cerr != nil {
			_ = cerr
		}
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close config: %w", err)
	}
	return nil
}
