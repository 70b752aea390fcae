package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with transaction data.
// Transactions are immutable once written.
type TransactionRepository interface {
	// List returns all transactions, most recent first
	// (occurred_at descending, then created_at descending)
	List(ctx context.Context) ([]entity.Transaction, error)

	// ListBetween returns transactions with occurred_at in [from, to), most recent first
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Transaction, error)

	// ListByWallet returns transactions touching a wallet as source or target
	ListByWallet(ctx context.Context, walletID string) ([]entity.Transaction, error)

	// GetByID retrieves a transaction by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// CreateAndApply inserts the transaction and applies its wallet balance
	// deltas as one atomic unit. Validation happens before any write.
	//
	// Possible errors:
	// - ErrMissingWallet, ErrMissingTargetWallet, ErrSameWallet: If wallet rules are broken
	// - ErrInvalidAmount, ErrNegativeAmount, ErrInvalidTransactionType: If fields are invalid
	// - ErrWalletNotFound: If a referenced wallet doesn't exist (nothing is written)
	// - ErrConstraintViolation: If a constraint fails (nothing is written)
	// - ErrIntegrity: If the row cannot be read back
	CreateAndApply(ctx context.Context, tx entity.NewTransaction) (*entity.Transaction, error)

	// SumByCategory totals amounts of one type in [from, to) grouped by category ID.
	// Uncategorized transactions are keyed by the empty string.
	SumByCategory(ctx context.Context, txType entity.TransactionType, from, to time.Time) (map[string]float64, error)

	// Totals returns income and expense totals in [from, to). Transfers are excluded.
	Totals(ctx context.Context, from, to time.Time) (income float64, expenses float64, err error)
}
