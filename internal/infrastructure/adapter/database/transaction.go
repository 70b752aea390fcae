package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// errNoTransaction is returned by Commit when ctx carries no transaction
var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions.
// The open gorm transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
	}
}

// Begin starts a new database transaction. SQLite handles are opened with
// _txlock=immediate, so the write lock is taken here rather than on the
// first write.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{
		"request_id": coreport.RequestID(ctx),
	})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errNoTransaction
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction. Rolling back a transaction
// that already finished, or a context without one, is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return nil
	}

	err := tx.Rollback().Error
	if err == nil {
		u.logger.Debug("Rolled back database transaction", nil)
		return nil
	}

	if errors.Is(err, gorm.ErrInvalidTransaction) || errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	u.logger.Error("Failed to rollback transaction", map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("failed to rollback transaction: %w", err)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetWalletRepository returns a wallet repository in the current transaction
func (u *UnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.getDbFromContext(ctx), u.timeProvider, u.idGenerator, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.timeProvider, u.idGenerator, u.logger)
}

// GetBillRepository returns a bill repository in the current transaction
func (u *UnitOfWork) GetBillRepository(ctx context.Context) persistence.BillRepository {
	return repository.NewBillRepository(u.getDbFromContext(ctx), u.idGenerator, u.logger)
}

// GetBillPaymentRepository returns a bill payment repository in the current transaction
func (u *UnitOfWork) GetBillPaymentRepository(ctx context.Context) persistence.BillPaymentRepository {
	return repository.NewBillPaymentRepository(u.getDbFromContext(ctx), u.timeProvider, u.idGenerator, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

// NewRepositories builds the full repository set on db
func NewRepositories(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator) persistence.Repositories {
	return persistence.Repositories{
		Users:        repository.NewUserRepository(db, timeProvider, logger),
		Wallets:      repository.NewWalletRepository(db, timeProvider, idGenerator, logger),
		Categories:   repository.NewCategoryRepository(db, timeProvider, idGenerator, logger),
		Budgets:      repository.NewBudgetRepository(db, timeProvider, idGenerator, logger),
		Transactions: repository.NewTransactionRepository(db, timeProvider, idGenerator, logger),
		Bills:        repository.NewBillRepository(db, idGenerator, logger),
		BillPayments: repository.NewBillPaymentRepository(db, timeProvider, idGenerator, logger),
		UnitOfWork:   NewUnitOfWork(db, logger, timeProvider, idGenerator),
	}
}
