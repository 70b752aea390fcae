package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// PayBillRequest represents a request to settle the current period of a bill.
// A nil WalletID falls back to the bill's default wallet.
type PayBillRequest struct {
	BillID   string
	Amount   *string
	WalletID *string
	Status   string
	PaidAt   *time.Time
}

// PayBillResult is the outcome of a bill payment
type PayBillResult struct {
	Bill        *entity.Bill        `json:"bill"`
	Payment     *entity.BillPayment `json:"payment"`
	Transaction *entity.Transaction `json:"transaction,omitempty"`
}

// RollForwardResult lists the bills whose due date was advanced
type RollForwardResult struct {
	Checked int           `json:"checked"`
	Rolled  []entity.Bill `json:"rolled"`
}

// BillUseCase defines methods for bill-related business operations
type BillUseCase interface {
	// RollForward advances every stale active bill past the current day and
	// resets its paid flag. Running it twice in a row changes nothing.
	RollForward(ctx context.Context, now time.Time) (*RollForwardResult, error)

	// Pay records a payment for a bill and marks it paid. Cleared payments
	// from a wallet also record an expense transaction.
	Pay(ctx context.Context, req PayBillRequest) (*PayBillResult, error)
}
