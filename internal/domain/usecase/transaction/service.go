package transaction

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// Service records transactions and keeps wallet balances in step with them
type Service struct {
	transactions persistence.TransactionRepository
	validator    *TransactionValidator
	logger       coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactions: transactions,
		validator:    NewTransactionValidator(),
		logger:       logger,
	}
}

// Create validates the request and records it together with its balance changes
func (s *Service) Create(ctx context.Context, req usecase.TransactionRequest) (*entity.Transaction, error) {
	newTx, err := s.validator.Build(req)
	if err != nil {
		s.logger.Warn("Rejected transaction request", map[string]any{
			"error":      err.Error(),
			"type":       req.Type,
			"request_id": coreport.RequestID(ctx),
		})
		return nil, err
	}

	txn, err := s.transactions.CreateAndApply(ctx, newTx)
	if err != nil {
		s.logger.Error("Transaction processing failed", map[string]any{
			"error":      err.Error(),
			"type":       string(newTx.Type),
			"amount":     entity.FormatAmount(newTx.Amount),
			"request_id": coreport.RequestID(ctx),
		})
		return nil, err
	}

	s.logger.Info("Transaction recorded", map[string]any{
		"transaction_id": txn.ID,
		"type":           string(txn.Type),
		"amount":         entity.FormatAmount(txn.Amount),
		"request_id":     coreport.RequestID(ctx),
	})
	return txn, nil
}

// List returns every transaction, or only those of one calendar month
func (s *Service) List(ctx context.Context, month time.Time) ([]entity.Transaction, error) {
	if month.IsZero() {
		return s.transactions.List(ctx)
	}
	from, to := entity.MonthRange(month)
	return s.transactions.ListBetween(ctx, from, to)
}
