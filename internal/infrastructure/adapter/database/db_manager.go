package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager owns the single storage handle of the process. The handle is
// opened lazily, cached, and invalidated by Close; the next Connect reopens it.
type Manager struct {
	config       *Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator

	mu sync.Mutex
	db *gorm.DB
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
	}
}

// Connect returns the cached handle, opening it on first use
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"path":   m.config.Path,
		"host":   m.config.Host,
		"name":   m.config.Database,
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:  NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: m.timeProvider.Now,
	})
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	if m.config.Driver == DriverSQLite {
		if err := m.verifyPragmas(ctx, gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"busy_timeout":   m.config.BusyTimeout.String(),
	})

	m.db = gormDB
	return m.db, nil
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverSQLite:
		if dir := filepath.Dir(m.config.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		return sqlite.Open(m.config.DSN()), nil
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// verifyPragmas checks that the DSN settings took effect before any
// migration runs
func (m *Manager) verifyPragmas(ctx context.Context, db *gorm.DB) error {
	var foreignKeys int
	if err := db.WithContext(ctx).Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error; err != nil {
		return fmt.Errorf("read foreign_keys pragma: %w", err)
	}
	if foreignKeys != 1 {
		return errors.New("sqlite foreign key enforcement is disabled")
	}

	var journalMode string
	if err := db.WithContext(ctx).Raw("PRAGMA journal_mode").Scan(&journalMode).Error; err != nil {
		return fmt.Errorf("read journal_mode pragma: %w", err)
	}
	if journalMode != "wal" {
		m.logger.Warn("SQLite is not in WAL mode", map[string]any{"journal_mode": journalMode})
	}
	return nil
}

// DB returns the cached handle, or nil when not connected
func (m *Manager) DB() *gorm.DB {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db
}

// Config returns the database configuration
func (m *Manager) Config() *Config {
	return m.config
}

// Close closes and forgets the handle. Closing a closed manager is a no-op.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeLocked()
}

func (m *Manager) closeLocked() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	m.db = nil
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// Destroy removes all persisted data. For sqlite the handle is closed and
// the database file is deleted together with its -wal and -shm files; for
// postgres every table is dropped and the handle closed.
func (m *Manager) Destroy(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.config.Driver {
	case DriverSQLite:
		if err := m.closeLocked(); err != nil {
			return err
		}
		for _, file := range m.config.SidecarFiles() {
			if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", file, err)
			}
		}
	case DriverPostgres:
		if m.db != nil {
			tables := append(model.All(), &model.SchemaMigration{})
			if err := m.db.WithContext(ctx).Migrator().DropTable(tables...); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		}
		if err := m.closeLocked(); err != nil {
			return err
		}
	}

	m.logger.Warn("Database destroyed", map[string]any{
		"driver": m.config.Driver,
		"path":   m.config.Path,
	})
	return nil
}

// Repositories builds the repository set on the current handle
func (m *Manager) Repositories() persistence.Repositories {
	return NewRepositories(m.DB(), m.logger, m.timeProvider, m.idGenerator)
}

// WithTimeout returns a context bounded by the busy timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := m.config.BusyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
