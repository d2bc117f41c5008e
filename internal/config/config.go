// Package config loads fastwin settings from defaults, an optional
// config file and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/okelund/fastwin/internal/fasting"
)

// Config holds the application configuration.
type Config struct {
	Clock   ClockConfig   `toml:"clock"`
	Fasting FastingConfig `toml:"fasting"`
}

// ClockConfig selects the clock convention used for prompts and output.
type ClockConfig struct {
	Format string `toml:"format"` // "24" or "12"
}

// FastingConfig holds fasting-window defaults.
type FastingConfig struct {
	DefaultHours string `toml:"default_hours"` // e.g. "16" or "16h30m"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Clock: ClockConfig{
			Format: "24",
		},
		Fasting: FastingConfig{
			DefaultHours: "16",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fastwin", "config.toml")
}

// Load loads configuration from the default path, merging with defaults
// and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays file config if it exists, then applies env
// overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. They take
// precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FASTWIN_CLOCK_FORMAT"); v != "" {
		cfg.Clock.Format = v
	}
	if v := os.Getenv("FASTWIN_DEFAULT_HOURS"); v != "" {
		cfg.Fasting.DefaultHours = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Clock.Format != "24" && c.Clock.Format != "12" {
		return fmt.Errorf("clock format must be \"24\" or \"12\", got %q", c.Clock.Format)
	}
	if _, err := fasting.ParseHours(c.Fasting.DefaultHours); err != nil {
		return fmt.Errorf("default_hours: %w", err)
	}
	return nil
}

// TwelveHour reports whether the 12-hour clock convention is selected.
func (c *Config) TwelveHour() bool {
	return c.Clock.Format == "12"
}
