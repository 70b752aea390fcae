package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// SeedResult reports what a seed run inserted
type SeedResult struct {
	UserCreated       bool
	CategoriesCreated int
}

// Seeder inserts the default user and categories. Every step is a no-op
// when its rows already exist.
type Seeder struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator
	currency     entity.Currency
	locale       entity.Locale
}

// NewSeeder creates a seeder that gives the default user currency and locale
func NewSeeder(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, currency entity.Currency, locale entity.Locale) *Seeder {
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if locale == "" {
		locale = entity.DefaultLocale
	}
	return &Seeder{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
		currency:     currency,
		locale:       locale,
	}
}

// Seed runs the user and category steps
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	if err := entity.ValidatePreferences(string(s.currency), string(s.locale)); err != nil {
		return result, err
	}

	created, err := s.SeedUser(ctx)
	if err != nil {
		return result, err
	}
	result.UserCreated = created

	count, err := s.SeedCategories(ctx)
	if err != nil {
		return result, err
	}
	result.CategoriesCreated = count

	if result.UserCreated || result.CategoriesCreated > 0 {
		s.logger.Info("Seeded default data", map[string]any{
			"user_created":       result.UserCreated,
			"categories_created": result.CategoriesCreated,
		})
	}
	return result, nil
}

// SeedUser inserts the local user unless any user row exists. The existence
// check and the insert are a single statement, so concurrent callers cannot
// both insert.
func (s *Seeder) SeedUser(ctx context.Context) (bool, error) {
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
				return err
			}
		}

		result := tx.Exec(insertFirstUserSQL(tx.Dialector.Name()),
			s.idGenerator.NewID(), s.timeProvider.Now(), string(s.currency), string(s.locale), false)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed user: %w", err)
	}
	return created, nil
}

func insertFirstUserSQL(dialect string) string {
	values := "?, ?, ?, ?, ?"
	if dialect == "postgres" {
		values = "CAST(? AS TEXT), CAST(? AS TIMESTAMP), CAST(? AS TEXT), CAST(? AS TEXT), CAST(? AS BOOLEAN)"
	}
	return "INSERT INTO users (id, created_at, currency, locale, onboarding_completed) " +
		"SELECT " + values + " WHERE NOT EXISTS (SELECT 1 FROM users)"
}

// SeedCategories inserts the default categories whose names are not taken
// yet and returns how many were inserted
func (s *Seeder) SeedCategories(ctx context.Context) (int, error) {
	var inserted int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := repository.NewCategoryRepository(tx, s.timeProvider, s.idGenerator, s.logger).ListNames(ctx)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		var missing []model.Category
		for _, name := range entity.DefaultCategoryNames {
			if _, ok := existing[name]; ok {
				continue
			}
			missing = append(missing, model.Category{
				ID:        s.idGenerator.NewID(),
				Name:      name,
				IsCustom:  false,
				CreatedAt: now,
			})
		}
		if len(missing) == 0 {
			return nil
		}

		if err := tx.Create(&missing).Error; err != nil {
			return err
		}
		inserted = len(missing)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	return inserted, nil
}
