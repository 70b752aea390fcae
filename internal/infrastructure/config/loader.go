package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported ID schemes
const (
	IDSchemeULID   = "ulid"
	IDSchemeUUIDv7 = "uuidv7"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by PL_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside development
	_ = loadDotEnvFile()

	return LoadConfigFor(getEnvironment())
}

// LoadConfigFor loads configuration for the given environment. The yaml file
// is optional; defaults and environment variables fill everything else.
func LoadConfigFor(env string) (*Config, error) {
	env = strings.ToLower(env)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every key
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "data/pocket-ledger.db")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 4)
	v.SetDefault("database.maxIdleConns", 2)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.busyTimeout", 5000)   // milliseconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.maxSizeMB", 10)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ledger.defaultCurrency", "EGP")
	v.SetDefault("ledger.defaultLocale", "ar-EG")
	v.SetDefault("ledger.idScheme", IDSchemeULID)
	v.SetDefault("ledger.rollBillsOnInit", true)

	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.format", "xlsx")
}

// getEnvironment determines the environment from PL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short PL_DB_* style variables onto config keys
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PL_DB_DRIVER":       "database.driver",
		"PL_DB_PATH":         "database.path",
		"PL_DB_HOST":         "database.host",
		"PL_DB_USERNAME":     "database.username",
		"PL_DB_PASSWORD":     "database.password",
		"PL_DB_NAME":         "database.database",
		"PL_DB_SSL_MODE":     "database.sslMode",
		"PL_DB_LOG_LEVEL":    "database.logLevel",
		"PL_SERVER_HOST":     "server.host",
		"PL_LOGGER_LEVEL":    "logger.level",
		"PL_LOGGER_FORMAT":   "logger.format",
		"PL_LOGGER_FILE":     "logger.file",
		"PL_LEDGER_CURRENCY": "ledger.defaultCurrency",
		"PL_LEDGER_LOCALE":   "ledger.defaultLocale",
		"PL_ID_SCHEME":       "ledger.idScheme",
		"PL_EXPORT_DIR":      "export.dir",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"PL_DB_PORT":            "database.port",
		"PL_DB_MAX_OPEN_CONNS":  "database.maxOpenConns",
		"PL_DB_BUSY_TIMEOUT_MS": "database.busyTimeout",
		"PL_SERVER_PORT":        "server.port",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.BusyTimeout = time.Duration(config.Database.BusyTimeout) * time.Millisecond
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
}
