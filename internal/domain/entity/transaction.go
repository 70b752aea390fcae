package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// TransactionType determines which wallet balances a transaction moves
type TransactionType string

// Transaction types
const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is an immutable money movement. Amount is never negative; the
// direction is implied by Type.
type Transaction struct {
	ID             string          `json:"id"`
	Amount         float64         `json:"amount"`
	Type           TransactionType `json:"type"`
	CategoryID     *string         `json:"categoryId"`
	WalletID       *string         `json:"walletId"`
	TargetWalletID *string         `json:"targetWalletId"`
	Note           *string         `json:"note"`
	OccurredAt     time.Time       `json:"occurredAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// NewTransaction holds the caller supplied fields of a transaction.
// ID and OccurredAt are generated when left empty.
type NewTransaction struct {
	ID             string
	Amount         float64
	Type           TransactionType
	CategoryID     *string
	WalletID       *string
	TargetWalletID *string
	Note           *string
	OccurredAt     *time.Time
}

// WalletDelta is a relative balance change applied with a transaction
type WalletDelta struct {
	WalletID string
	Delta    float64
}

// Validate enforces the per-type wallet rules before anything is written
func (t NewTransaction) Validate() error {
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	switch t.Type {
	case TransactionIncome, TransactionExpense:
		if isBlank(t.WalletID) {
			return errs.ErrMissingWallet
		}
	case TransactionTransfer:
		if isBlank(t.WalletID) {
			return errs.ErrMissingWallet
		}
		if isBlank(t.TargetWalletID) {
			return errs.ErrMissingTargetWallet
		}
		if *t.WalletID == *t.TargetWalletID {
			return errs.ErrSameWallet
		}
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, t.Type)
	}

	return nil
}

// Deltas returns the balance adjustments the transaction implies.
// Validate must have succeeded first.
func (t NewTransaction) Deltas() []WalletDelta {
	switch t.Type {
	case TransactionExpense:
		return []WalletDelta{{WalletID: *t.WalletID, Delta: -t.Amount}}
	case TransactionIncome:
		return []WalletDelta{{WalletID: *t.WalletID, Delta: t.Amount}}
	case TransactionTransfer:
		return []WalletDelta{
			{WalletID: *t.WalletID, Delta: -t.Amount},
			{WalletID: *t.TargetWalletID, Delta: t.Amount},
		}
	}
	return nil
}

// IsValidTransactionType reports whether the type is known
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// MonthlySummary holds aggregate income and expenses of one month.
// The monthly_summaries table is reserved; summaries are computed on read.
type MonthlySummary struct {
	Month         string  `json:"month"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Savings       float64 `json:"savings"`
}

// NewMonthlySummary derives savings from the income and expense totals
func NewMonthlySummary(month time.Time, income, expenses float64) MonthlySummary {
	return MonthlySummary{
		Month:         month.Format("2006-01"),
		TotalIncome:   RoundAmount(income),
		TotalExpenses: RoundAmount(expenses),
		Savings:       RoundAmount(income - expenses),
	}
}

// AITokenLedger mirrors the reserved ai_token_ledger table
type AITokenLedger struct {
	ID         string    `json:"id"`
	Month      string    `json:"month"`
	TokensUsed int64     `json:"tokensUsed"`
	TokenLimit int64     `json:"tokenLimit"`
	LastReset  time.Time `json:"lastReset"`
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
