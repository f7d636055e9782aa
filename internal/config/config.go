// Package config provides configuration management for gridpick.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the gridpick configuration.
type Config struct {
	Picker   PickerConfig `yaml:"picker"`
	Model    ModelConfig  `yaml:"model"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
}

// PickerConfig holds picker session defaults. Command-line flags override
// these per invocation.
type PickerConfig struct {
	SpanAllScreens      bool `yaml:"span_all_screens"`      // Lay the picker across all displays
	AllowEmptySelection bool `yaml:"allow_empty_selection"` // Permit confirming zero rows
	MaxVisibleRows      int  `yaml:"max_visible_rows"`      // Cap on rows painted at once (0 = terminal height)
}

// ModelConfig holds model database settings.
type ModelConfig struct {
	Path string `yaml:"path"` // Model database path (overrides default)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load reads the config file, overlaying it on the defaults. A missing file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	return LoadFrom(ConfigFile())
}

// LoadFrom loads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ModelPath returns the model database path, falling back to the default
// data location.
func (c *Config) ModelPath() string {
	if c.Model.Path != "" {
		return c.Model.Path
	}
	return filepath.Join(DataDir(), "model.db")
}

// SlogLevel maps the configured log level onto slog. Unknown values fall
// back to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
