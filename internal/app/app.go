package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

// App owns the storage lifecycle of one process: a single lazily opened
// handle, run-once migrations and seeding, and the development reset.
type App struct {
	config       *config.Config
	manager      *database.Manager
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator

	mu       sync.Mutex
	migrated bool
	seeded   bool
}

// New creates an App for the given configuration. Nothing is opened until
// the first call that needs the database.
func New(
	cfg *config.Config,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	idGenerator coreport.IDGenerator,
) *App {
	return &App{
		config:       cfg,
		manager:      database.NewManager(database.CreateConfigFromAppConfig(cfg), logger, timeProvider, idGenerator),
		logger:       logger,
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
	}
}

// Config returns the application configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Manager returns the database manager
func (a *App) Manager() *database.Manager {
	return a.manager
}

// Initialize makes the database ready: opens the handle, applies pending
// migrations and seeds the defaults. Migration and seed run once per App;
// later calls only reopen the handle if it was closed. A failure leaves the
// corresponding step pending so the next call retries it.
func (a *App) Initialize(ctx context.Context) (persistence.Repositories, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.initializeLocked(ctx); err != nil {
		return persistence.Repositories{}, err
	}
	return a.manager.Repositories(), nil
}

func (a *App) initializeLocked(ctx context.Context) error {
	if _, err := a.migrateLocked(ctx); err != nil {
		return err
	}
	if a.seeded {
		return nil
	}

	result, err := a.seeder().Seed(ctx)
	if err != nil {
		a.logger.Error("Seeding failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("seed: %w", err)
	}
	a.seeded = true

	a.logger.Info("Database ready", map[string]any{
		"driver":             a.config.Database.Driver,
		"user_created":       result.UserCreated,
		"categories_created": result.CategoriesCreated,
	})
	return nil
}

// Migrate opens the handle and applies pending migrations without seeding
func (a *App) Migrate(ctx context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.migrateLocked(ctx)
}

func (a *App) migrateLocked(ctx context.Context) (int, error) {
	db, err := a.manager.Connect(ctx)
	if err != nil {
		return 0, err
	}
	if a.migrated {
		return 0, nil
	}

	applied, err := migration.NewMigrationManager(db, a.logger, a.timeProvider).MigrateAll(ctx)
	if err != nil {
		a.logger.Error("Migration failed", map[string]any{"error": err.Error()})
		return applied, fmt.Errorf("migrate: %w", err)
	}
	if err := migration.VerifySchema(db.WithContext(ctx)); err != nil {
		a.logger.Error("Schema verification failed", map[string]any{"error": err.Error()})
		return applied, fmt.Errorf("%w: %w", errs.ErrIntegrity, err)
	}
	a.migrated = true
	return applied, nil
}

// Seed migrates if needed and runs the seed routine. Unlike Initialize it
// always runs the routine, which is a no-op on a seeded database.
func (a *App) Seed(ctx context.Context) (migration.SeedResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.migrateLocked(ctx); err != nil {
		return migration.SeedResult{}, err
	}

	result, err := a.seeder().Seed(ctx)
	if err != nil {
		return result, fmt.Errorf("seed: %w", err)
	}
	a.seeded = true
	return result, nil
}

func (a *App) seeder() *migration.Seeder {
	return migration.NewSeeder(
		a.manager.DB(),
		a.logger,
		a.timeProvider,
		a.idGenerator,
		entity.Currency(a.config.Ledger.DefaultCurrency),
		entity.Locale(a.config.Ledger.DefaultLocale),
	)
}

// Services initializes the database and builds the use cases on top of it.
// Stale bills are rolled forward first when the configuration asks for it.
func (a *App) Services(ctx context.Context) (*Services, error) {
	repos, err := a.Initialize(ctx)
	if err != nil {
		return nil, err
	}

	services := NewServices(repos, a.timeProvider, a.logger)
	if a.config.Ledger.RollBillsOnInit {
		if _, err := services.Bills.RollForward(ctx, a.timeProvider.Now()); err != nil {
			return nil, fmt.Errorf("roll bills: %w", err)
		}
	}
	return services, nil
}

// Close closes the handle. The next Initialize reopens it.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.manager.Close()
}

// ResetDatabase deletes every persisted row and table so the next Initialize
// starts from a fresh install. It refuses to run in production.
func (a *App) ResetDatabase(ctx context.Context) error {
	if !a.config.AllowsReset() {
		a.logger.Warn("Refusing to reset database", map[string]any{
			"environment": a.config.Environment,
		})
		return fmt.Errorf("%w: environment %s", errs.ErrResetNotAllowed, a.config.Environment)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Postgres tables can only be dropped over an open handle
	if a.config.Database.Driver == config.DriverPostgres {
		if _, err := a.manager.Connect(ctx); err != nil {
			return err
		}
	}

	if err := a.manager.Destroy(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	a.migrated = false
	a.seeded = false
	return nil
}
