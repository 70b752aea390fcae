package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// TransactionRequest represents an incoming transaction request.
// Amount is a decimal string such as "30" or "30.50".
type TransactionRequest struct {
	Amount         string
	Type           string
	CategoryID     *string
	WalletID       *string
	TargetWalletID *string
	Note           *string
	OccurredAt     *time.Time
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// Create validates the request, records the transaction and applies its
	// wallet balance changes atomically
	Create(ctx context.Context, req TransactionRequest) (*entity.Transaction, error)

	// List returns transactions, most recent first. A non-zero month limits
	// the result to that calendar month.
	List(ctx context.Context, month time.Time) ([]entity.Transaction, error)
}
