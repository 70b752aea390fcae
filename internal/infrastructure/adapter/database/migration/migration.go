package migration

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migration is one forward-only schema step. Statements run in order, then
// Up when set; both share the transaction that records the version.
type Migration struct {
	Version     int
	Description string
	Statements  []string
	Up          func(tx *gorm.DB) error
}

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT,
	applied_at TIMESTAMP NOT NULL
)`

// Migrations returns the ordered schema history
func Migrations() []Migration {
	return []Migration{
		initialSchema(),
		queryIndexes(),
		billStatusColumns(),
	}
}

// CurrentSchemaVersion is the version a fully migrated database reports
func CurrentSchemaVersion() int {
	all := Migrations()
	return all[len(all)-1].Version
}

// MigrationManager applies pending migrations and tracks the schema version
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	migrations   []Migration
}

// NewMigrationManager creates a migration manager for the built-in history
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return NewMigrationManagerFor(db, logger, timeProvider, Migrations())
}

// NewMigrationManagerFor creates a migration manager for an explicit history
func NewMigrationManagerFor(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, migrations []Migration) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		migrations:   migrations,
	}
}

// MigrateAll applies every migration newer than the recorded version. Each
// migration commits together with its version row, so a failure leaves the
// version unchanged and the migration is retried in full on the next run.
// It returns the number of migrations applied.
func (m *MigrationManager) MigrateAll(ctx context.Context) (int, error) {
	if err := validateHistory(m.migrations); err != nil {
		return 0, err
	}

	if err := m.db.WithContext(ctx).Exec(createVersionTable).Error; err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	latest := 0
	if len(m.migrations) > 0 {
		latest = m.migrations[len(m.migrations)-1].Version
	}
	if current > latest {
		return 0, fmt.Errorf("%w: database at %d, build knows %d", errs.ErrSchemaTooNew, current, latest)
	}
	if current == latest {
		m.logger.Debug("Database already at target version, skipping migration", map[string]any{
			"version": current,
		})
		return 0, nil
	}

	m.logger.Info("Starting database migrations", map[string]any{
		"current_version": current,
		"target_version":  latest,
	})

	applied := 0
	for _, migration := range m.migrations {
		if migration.Version <= current {
			continue
		}

		ran, err := m.apply(ctx, migration)
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version":     migration.Version,
				"description": migration.Description,
				"error":       err.Error(),
			})
			return applied, fmt.Errorf("migration %d (%s): %w", migration.Version, migration.Description, err)
		}
		if ran {
			applied++
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": latest,
		"applied": applied,
	})
	return applied, nil
}

// apply runs one migration in its own transaction. The version is re-read
// under the write lock so that a concurrent runner that got there first
// turns this call into a no-op.
func (m *MigrationManager) apply(ctx context.Context, migration Migration) (bool, error) {
	ran := false
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := currentVersion(tx)
		if err != nil {
			return err
		}
		if current >= migration.Version {
			return nil
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     migration.Version,
			"description": migration.Description,
		})

		for _, statement := range migration.Statements {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		if migration.Up != nil {
			if err := migration.Up(tx); err != nil {
				return err
			}
		}

		ran = true
		return tx.Create(&model.SchemaMigration{
			Version:     migration.Version,
			Description: migration.Description,
			AppliedAt:   m.timeProvider.Now(),
		}).Error
	})
	return ran, err
}

// GetCurrentVersion returns the highest applied version, 0 for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (int, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	return currentVersion(m.db.WithContext(ctx))
}

// AppliedMigrations lists the recorded versions in ascending order
func (m *MigrationManager) AppliedMigrations(ctx context.Context) ([]model.SchemaMigration, error) {
	var applied []model.SchemaMigration
	if err := m.db.WithContext(ctx).Order("version ASC").Find(&applied).Error; err != nil {
		return nil, err
	}
	return applied, nil
}

func currentVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// validateHistory rejects duplicate, non-positive or out of order versions
// before any statement runs
func validateHistory(migrations []Migration) error {
	previous := 0
	for _, migration := range migrations {
		if migration.Version <= previous {
			return fmt.Errorf("invalid migration history: version %d follows %d", migration.Version, previous)
		}
		previous = migration.Version
	}
	return nil
}
