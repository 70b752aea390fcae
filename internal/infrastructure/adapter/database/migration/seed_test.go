package migration_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, m := connect(t)
	m.SetupTestDB(t)

	seeder := migration.NewSeeder(db, m.Logger, m.TimeProvider, m.IDGenerator, "", "")

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, first.UserCreated)
	assert.Equal(t, len(entity.DefaultCategoryNames), first.CategoriesCreated)

	second, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, second.UserCreated)
	assert.Zero(t, second.CategoriesCreated)

	var users, categories int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Category{}).Where("is_custom = ?", false).Count(&categories).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(14), categories)

	var user model.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, string(entity.CurrencyEGP), user.Currency)
	assert.Equal(t, string(entity.LocaleArEG), user.Locale)
	assert.False(t, user.OnboardingCompleted)
}

func TestSeedInsertsOnlyMissingCategories(t *testing.T) {
	ctx := context.Background()
	_, m := connect(t)
	db := m.SetupTestDB(t)

	m.CreateTestCategory(t, "gym")

	seeder := migration.NewSeeder(db, m.Logger, m.TimeProvider, m.IDGenerator, "", "")
	inserted, err := seeder.SeedCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entity.DefaultCategoryNames)-1, inserted)

	var gyms int64
	require.NoError(t, db.Model(&model.Category{}).Where("name = ?", "gym").Count(&gyms).Error)
	assert.Equal(t, int64(1), gyms)
}

func TestSeedUsesConfiguredPreferences(t *testing.T) {
	ctx := context.Background()
	_, m := connect(t)
	db := m.SetupTestDB(t)

	seeder := migration.NewSeeder(db, m.Logger, m.TimeProvider, m.IDGenerator, entity.CurrencyUSD, entity.LocaleEnUS)
	created, err := seeder.SeedUser(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	var user model.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "USD", user.Currency)
	assert.Equal(t, "en-US", user.Locale)
}

func TestSeedRejectsUnsupportedCurrency(t *testing.T) {
	_, m := connect(t)
	db := m.SetupTestDB(t)

	seeder := migration.NewSeeder(db, m.Logger, m.TimeProvider, m.IDGenerator, "GBP", entity.LocaleEnUS)
	_, err := seeder.Seed(context.Background())
	assert.Error(t, err)
}
