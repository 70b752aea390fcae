package migration_test

import (
	"context"
	"testing"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func connect(t *testing.T) (*gorm.DB, *database.TestDBManager) {
	t.Helper()
	m := database.NewTestDBManager(t, logger.NewNoopLogger())
	return m.Connect(t), m
}

func TestMigrateAllFreshDatabase(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)
	runner := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)

	applied, err := runner.MigrateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	version, err := runner.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion(), version)

	require.NoError(t, migration.VerifySchema(db))

	history, err := runner.AppliedMigrations(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "create tables", history[0].Description)
}

func TestMigrateAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)
	runner := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)

	_, err := runner.MigrateAll(ctx)
	require.NoError(t, err)

	applied, err := runner.MigrateAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, applied)

	var rows int64
	require.NoError(t, db.Model(&model.SchemaMigration{}).Count(&rows).Error)
	assert.Equal(t, int64(3), rows)
}

func TestMigrateAllRollsBackFailingMigration(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)

	first := migration.Migration{
		Version:     1,
		Description: "create notes",
		Statements:  []string{`CREATE TABLE notes (id TEXT PRIMARY KEY)`},
	}
	broken := migration.Migration{
		Version:     2,
		Description: "broken step",
		Statements: []string{
			`CREATE TABLE tags (id TEXT PRIMARY KEY)`,
			`CREATE TABLE oops (`,
		},
	}

	runner := migration.NewMigrationManagerFor(db, m.Logger, m.TimeProvider, []migration.Migration{first, broken})
	applied, err := runner.MigrateAll(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, applied)

	version, err := runner.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.True(t, db.Migrator().HasTable("notes"))
	assert.False(t, db.Migrator().HasTable("tags"), "partial migration must not persist")

	fixed := broken
	fixed.Statements = []string{`CREATE TABLE tags (id TEXT PRIMARY KEY)`}
	runner = migration.NewMigrationManagerFor(db, m.Logger, m.TimeProvider, []migration.Migration{first, fixed})

	applied, err = runner.MigrateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.True(t, db.Migrator().HasTable("tags"))
}

func TestMigrateAllRejectsInvalidHistory(t *testing.T) {
	db, m := connect(t)

	history := []migration.Migration{
		{Version: 1, Statements: []string{`CREATE TABLE a (id TEXT)`}},
		{Version: 1, Statements: []string{`CREATE TABLE b (id TEXT)`}},
	}
	_, err := migration.NewMigrationManagerFor(db, m.Logger, m.TimeProvider, history).MigrateAll(context.Background())

	require.Error(t, err)
	assert.False(t, db.Migrator().HasTable("a"))
	assert.False(t, db.Migrator().HasTable("schema_migrations"))
}

func TestMigrateAllRefusesNewerDatabase(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)
	runner := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)

	_, err := runner.MigrateAll(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.SchemaMigration{
		Version:   99,
		AppliedAt: m.TimeProvider.Now(),
	}).Error)

	_, err = runner.MigrateAll(ctx)
	assert.ErrorIs(t, err, errs.ErrSchemaTooNew)
}

func TestBillStatusColumnsSkipExistingColumns(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)

	all := migration.Migrations()
	_, err := migration.NewMigrationManagerFor(db, m.Logger, m.TimeProvider, all[:2]).MigrateAll(ctx)
	require.NoError(t, err)

	// A database that picked up the paid column outside the version table
	require.NoError(t, db.Exec(`ALTER TABLE bills ADD COLUMN paid BOOLEAN NOT NULL DEFAULT FALSE`).Error)

	applied, err := migration.NewMigrationManager(db, m.Logger, m.TimeProvider).MigrateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	require.NoError(t, migration.VerifySchema(db))
}

func TestVerifySchemaReportsMissingTables(t *testing.T) {
	db, _ := connect(t)

	err := migration.VerifySchema(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}
