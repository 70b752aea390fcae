package database

import (
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the viper-loaded application
// configuration to database configuration
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig(conf.Database.Path)

	dbConf.Driver = conf.Database.Driver
	dbConf.Host = conf.Database.Host
	dbConf.Port = conf.Database.Port
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.BusyTimeout > 0 {
		dbConf.BusyTimeout = conf.Database.BusyTimeout
	}
	if conf.Database.SlowThreshold > 0 {
		dbConf.SlowThreshold = conf.Database.SlowThreshold
	}
	if conf.Database.LogLevel != "" {
		dbConf.LogLevel = conf.Database.LogLevel
	}

	return dbConf
}
