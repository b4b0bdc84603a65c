// Package config handles application configuration loading and validation
// for cubeshuffle. This is the on-disk YAML file; the per-user shuffle
// settings that survive between review sessions live in package settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/cubeshuffle/internal/core/styles"
)

// StoreBackend names a key-value storage implementation.
type StoreBackend string

// Supported storage backends.
const (
	BackendSQLite StoreBackend = "sqlite"
	BackendFile   StoreBackend = "file"
	BackendMemory StoreBackend = "memory"
	BackendNone   StoreBackend = "none"
)

// IsValid checks if the backend is a supported value.
func (b StoreBackend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendFile, BackendMemory, BackendNone:
		return true
	default:
		return false
	}
}

// MinCardWidth is the narrowest card the review screen will lay out.
const MinCardWidth = 12

// Config holds the application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	TUI      TUIConfig      `yaml:"tui"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// StoreConfig selects where persisted settings are kept.
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend"`
}

// DatabaseConfig tunes the SQLite backend.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// TUIConfig holds review screen options.
type TUIConfig struct {
	Theme     string `yaml:"theme"`
	CardWidth int    `yaml:"card_width"` // card width in cells at 100% zoom
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{Backend: BackendSQLite},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		TUI: TUIConfig{
			Theme:     styles.DefaultTheme,
			CardWidth: 22,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Store.Backend == "" {
		c.Store.Backend = defaults.Store.Backend
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.CardWidth == 0 {
		c.TUI.CardWidth = defaults.TUI.CardWidth
	}
}

