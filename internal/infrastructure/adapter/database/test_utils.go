package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/idgen"
	timeprovider "github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing against a throwaway SQLite file
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	IDGenerator  coreport.IDGenerator
}

// NewTestDBManager creates a test database manager whose database file
// lives in t.TempDir()
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()
	return NewTestDBManagerWithClock(t, logger, timeprovider.NewRealTimeProvider())
}

// NewTestDBManagerWithClock is NewTestDBManager with a caller supplied clock
func NewTestDBManagerWithClock(t *testing.T, logger coreport.Logger, clock coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := DefaultConfig(filepath.Join(t.TempDir(), "ledger-test.db"))
	config.LogLevel = "silent"

	ids := idgen.NewULIDGenerator(clock)

	return &TestDBManager{
		Manager:      NewManager(config, logger, clock, ids),
		Config:       config,
		Logger:       logger,
		TimeProvider: clock,
		IDGenerator:  ids,
	}
}

// Connect opens the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })
	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB connects and applies every migration
func (m *TestDBManager) SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := m.Connect(t)
	if _, err := migration.NewMigrationManager(db, m.Logger, m.TimeProvider).MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// Seed inserts the default user and categories
func (m *TestDBManager) Seed(t *testing.T) {
	t.Helper()

	seeder := migration.NewSeeder(m.Manager.DB(), m.Logger, m.TimeProvider, m.IDGenerator, entity.DefaultCurrency, entity.DefaultLocale)
	if _, err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
}

// Repositories returns the repository set bound to the test database
func (m *TestDBManager) Repositories() persistence.Repositories {
	return m.Manager.Repositories()
}

// CreateTestWallet creates a wallet with the given opening balance
func (m *TestDBManager) CreateTestWallet(t *testing.T, name string, walletType entity.WalletType, balance float64) entity.Wallet {
	t.Helper()

	wallet, err := m.Repositories().Wallets.Create(context.Background(), entity.NewWallet{
		Name:    name,
		Type:    walletType,
		Balance: balance,
	})
	if err != nil {
		t.Fatalf("Failed to create test wallet: %v", err)
	}
	return *wallet
}

// CreateTestCategory creates a custom category
func (m *TestDBManager) CreateTestCategory(t *testing.T, name string) entity.Category {
	t.Helper()

	category, err := m.Repositories().Categories.Create(context.Background(), entity.NewCategory{
		Name:     name,
		IsCustom: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return *category
}

// SetupTestRepositories returns migrated and seeded repositories on a fresh database
func SetupTestRepositories(t *testing.T, logger coreport.Logger) (persistence.Repositories, *TestDBManager) {
	t.Helper()

	m := NewTestDBManager(t, logger)
	m.SetupTestDB(t)
	m.Seed(t)
	return m.Repositories(), m
}
