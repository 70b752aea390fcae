package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Export      ExportConfig   `mapstructure:"export"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains storage engine settings. Path is used by sqlite,
// the host fields by postgres.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	BusyTimeout     time.Duration `mapstructure:"busyTimeout"`     // milliseconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LedgerConfig contains domain defaults
type LedgerConfig struct {
	DefaultCurrency string `mapstructure:"defaultCurrency"`
	DefaultLocale   string `mapstructure:"defaultLocale"`
	IDScheme        string `mapstructure:"idScheme"`
	RollBillsOnInit bool   `mapstructure:"rollBillsOnInit"`
}

// ExportConfig contains export settings
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// AllowsReset reports whether destructive development operations are permitted
func (c *Config) AllowsReset() bool {
	return c.Environment == Development || c.Environment == Test
}

// Validate ensures all required configuration values are present and sane
func (c *Config) Validate() error {
	var missing []string

	switch c.Environment {
	case "":
		missing = append(missing, "environment")
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			missing = append(missing, "database.path")
		}
	case DriverPostgres:
		if c.Database.Host == "" {
			missing = append(missing, "database.host (or PL_DB_HOST environment variable)")
		}
		if c.Database.Database == "" {
			missing = append(missing, "database.database (or PL_DB_NAME environment variable)")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username (or PL_DB_USERNAME environment variable)")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	switch c.Ledger.IDScheme {
	case IDSchemeULID, IDSchemeUUIDv7:
	default:
		return fmt.Errorf("invalid id scheme: %s, must be %s or %s", c.Ledger.IDScheme, IDSchemeULID, IDSchemeUUIDv7)
	}

	switch c.Export.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("invalid export format: %s", c.Export.Format)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
