package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:             m.ID,
		Amount:         m.Amount,
		Type:           entity.TransactionType(m.Type),
		CategoryID:     m.CategoryID,
		WalletID:       m.WalletID,
		TargetWalletID: m.TargetWalletID,
		Note:           m.Note,
		OccurredAt:     m.OccurredAt.UTC(),
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

// entityToModel builds the row of a new transaction, filling the ID and
// timestamps the caller left empty
func (r *TransactionRepository) entityToModel(tx entity.NewTransaction) model.Transaction {
	now := r.timeProvider.Now()

	id := tx.ID
	if id == "" {
		id = r.idGenerator.NewID()
	}
	occurredAt := now
	if tx.OccurredAt != nil && !tx.OccurredAt.IsZero() {
		occurredAt = tx.OccurredAt.UTC().Truncate(time.Microsecond)
	}

	return model.Transaction{
		ID:             id,
		Amount:         tx.Amount,
		Type:           string(tx.Type),
		CategoryID:     optionalString(tx.CategoryID),
		WalletID:       optionalString(tx.WalletID),
		TargetWalletID: optionalString(tx.TargetWalletID),
		Note:           tx.Note,
		OccurredAt:     occurredAt,
		CreatedAt:      now,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "transaction", err, fields)
}

func (r *TransactionRepository) list(operation string, query *gorm.DB) ([]entity.Transaction, error) {
	var models []model.Transaction
	if err := query.Order("occurred_at DESC, created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, nil)
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// List returns all transactions, most recent first
func (r *TransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	return r.list("listing transactions", r.db.WithContext(ctx))
}

// ListBetween returns transactions with occurred_at in [from, to), most recent first
func (r *TransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC())
	return r.list("listing transactions by period", query)
}

// ListByWallet returns transactions touching a wallet as source or target
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("wallet_id = ? OR target_wallet_id = ?", walletID, walletID)
	return r.list("listing transactions by wallet", query)
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.getByID(r.db.WithContext(ctx), id)
}

func (r *TransactionRepository) getByID(db *gorm.DB, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := db.Where("id = ?", id).Limit(1).Find(&transactionModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	transaction := r.modelToEntity(&transactionModel)
	return &transaction, nil
}

// CreateAndApply inserts the transaction and moves the wallet balances it
// implies in one database transaction. When the repository is already bound
// to an open transaction the work joins it through a savepoint.
//
// Wallet deltas are applied before the insert so that a missing wallet is
// reported as ErrWalletNotFound instead of an anonymous foreign key failure.
func (r *TransactionRepository) CreateAndApply(ctx context.Context, tx entity.NewTransaction) (*entity.Transaction, error) {
	if err := tx.Validate(); err != nil {
		r.logger.Debug("Transaction rejected by validation", map[string]any{
			"type":  string(tx.Type),
			"error": err.Error(),
		})
		return nil, err
	}

	transactionModel := r.entityToModel(tx)
	fields := map[string]any{
		"transaction_id": transactionModel.ID,
		"type":           transactionModel.Type,
		"amount":         entity.FormatAmount(transactionModel.Amount),
	}

	var created *entity.Transaction
	err := r.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		for _, delta := range tx.Deltas() {
			if err := applyWalletDelta(dbTx, delta.WalletID, delta.Delta); err != nil {
				if errors.Is(err, errs.ErrWalletNotFound) {
					return fmt.Errorf("%w: %s", errs.ErrWalletNotFound, delta.WalletID)
				}
				return r.handleDatabaseError("applying wallet delta", err, fields)
			}
		}

		if err := dbTx.Create(&transactionModel).Error; err != nil {
			return r.handleDatabaseError("creating transaction", err, fields)
		}

		readBack, err := r.getByID(dbTx, transactionModel.ID)
		if err != nil {
			return err
		}
		if readBack == nil {
			return errs.ErrIntegrity
		}
		created = readBack
		return nil
	})
	if err != nil {
		r.logger.Warn("Transaction rolled back", map[string]any{
			"transaction_id": transactionModel.ID,
			"type":           transactionModel.Type,
			"error":          err.Error(),
		})
		return nil, errs.NewTransactionError(string(tx.Type), tx.Amount, tx.WalletID, tx.TargetWalletID, err)
	}

	r.logger.Info("Transaction created successfully", fields)
	return created, nil
}

// SumByCategory totals amounts of one type in [from, to) grouped by category ID
func (r *TransactionRepository) SumByCategory(ctx context.Context, txType entity.TransactionType, from, to time.Time) (map[string]float64, error) {
	var rows []struct {
		CategoryID string
		Total      float64
	}

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(category_id, '') AS category_id, COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND occurred_at >= ? AND occurred_at < ?", string(txType), from.UTC(), to.UTC()).
		Group("COALESCE(category_id, '')").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("summing transactions by category", err, map[string]any{"type": string(txType)})
	}

	sums := make(map[string]float64, len(rows))
	for _, row := range rows {
		sums[row.CategoryID] = entity.RoundAmount(row.Total)
	}
	return sums, nil
}

// Totals returns income and expense totals in [from, to)
func (r *TransactionRepository) Totals(ctx context.Context, from, to time.Time) (float64, float64, error) {
	var totals struct {
		Income   float64
		Expenses float64
	}

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expenses",
			string(entity.TransactionIncome), string(entity.TransactionExpense),
		).
		Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC()).
		Scan(&totals).Error
	if err != nil {
		return 0, 0, r.handleDatabaseError("totalling transactions", err, nil)
	}

	return entity.RoundAmount(totals.Income), entity.RoundAmount(totals.Expenses), nil
}
