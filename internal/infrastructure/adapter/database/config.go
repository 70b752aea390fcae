package database

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Path            string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
}

// DefaultConfig returns an embedded sqlite configuration for the given file
func DefaultConfig(path string) *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            path,
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		BusyTimeout:     5 * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        "warn",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("database path is required")
		}
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.BusyTimeout < 0 {
		return errors.New("busy timeout must not be negative")
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the connection string for the configured driver.
// For sqlite the pragmas are part of the DSN so that every pooled
// connection gets foreign keys, the busy timeout and WAL mode, and write
// transactions take the lock up front.
func (c *Config) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}

	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", fmt.Sprintf("%d", c.BusyTimeout.Milliseconds()))
	params.Set("_journal_mode", "WAL")
	params.Set("_txlock", "immediate")
	return "file:" + c.Path + "?" + params.Encode()
}

// SidecarFiles returns the sqlite database file with its WAL and shared
// memory companions
func (c *Config) SidecarFiles() []string {
	return []string{c.Path, c.Path + "-wal", c.Path + "-shm"}
}
