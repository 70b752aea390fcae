package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// BillRepository defines methods to interact with recurring bills
type BillRepository interface {
	// List returns all bills ordered by next due date ascending
	List(ctx context.Context) ([]entity.Bill, error)

	// ListActive returns active bills ordered by next due date ascending
	ListActive(ctx context.Context) ([]entity.Bill, error)

	// GetByID retrieves a bill by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.Bill, error)

	// Create inserts an active, unpaid bill and returns the stored row
	//
	// Possible errors:
	// - ErrConstraintViolation: If frequency or a reference is invalid
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, bill entity.NewBill) (*entity.Bill, error)

	// UpdateSchedule moves next_due_date and resets paid to false
	//
	// Possible errors:
	// - ErrBillNotFound: If bill doesn't exist
	UpdateSchedule(ctx context.Context, id string, nextDue time.Time) (*entity.Bill, error)

	// SetPaid marks the bill paid or unpaid for the current period
	//
	// Possible errors:
	// - ErrBillNotFound: If bill doesn't exist
	SetPaid(ctx context.Context, id string, paid bool) (*entity.Bill, error)
}

// BillPaymentRepository defines methods to interact with bill payment records
type BillPaymentRepository interface {
	// Create inserts a payment record and returns the stored row
	//
	// Possible errors:
	// - ErrConstraintViolation: If the bill or wallet doesn't exist
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, payment entity.NewBillPayment) (*entity.BillPayment, error)

	// GetByID retrieves a payment by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.BillPayment, error)

	// ListByBill returns the payments of a bill, most recent first
	ListByBill(ctx context.Context, billID string) ([]entity.BillPayment, error)
}
