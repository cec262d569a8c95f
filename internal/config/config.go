// Package config holds the application configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mkurov/dela/internal/env"
)

// Storage backend names accepted by DELA_STORAGE_TYPE.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds the application configuration, loaded from DELA_*
// environment variables.
type Config struct {
	// StorageType selects the task repository: memory (default) or
	// sqlite.
	StorageType string `env:"DELA_STORAGE_TYPE"`

	// SQLiteDSN is the database location for the sqlite backend.
	// Defaults to ":memory:" so nothing outlives the run.
	SQLiteDSN string `env:"DELA_SQLITE_DSN"`

	// LogLevel sets the slog level: debug, info, warn, error.
	LogLevel string `env:"DELA_LOG_LEVEL"`
}

// Load parses environment variables into a Config, applies defaults for
// unset values, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		StorageType: StorageMemory,
		SQLiteDSN:   ":memory:",
		LogLevel:    "info",
	}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLiteDSN == "" {
			return fmt.Errorf("DELA_SQLITE_DSN is required when DELA_STORAGE_TYPE is %q", StorageSQLite)
		}
	default:
		return fmt.Errorf("unknown DELA_STORAGE_TYPE: %s", c.StorageType)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps the configured LogLevel to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown DELA_LOG_LEVEL: %s", c.LogLevel)
	}
}
