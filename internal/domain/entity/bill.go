package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// Frequency is the recurrence period of a bill
type Frequency string

// Bill frequencies
const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// PeriodMonths returns the number of months between two due dates
func (f Frequency) PeriodMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyYearly:
		return 12
	}
	return 0
}

// IsValidFrequency reports whether the frequency is known
func IsValidFrequency(f string) bool {
	return Frequency(f).PeriodMonths() > 0
}

// Bill is a recurring obligation whose due date advances one period at a time
type Bill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Frequency   Frequency `json:"frequency"`
	CategoryID  *string   `json:"categoryId"`
	WalletID    *string   `json:"walletId"`
	NextDueDate time.Time `json:"nextDueDate"`
	Active      bool      `json:"active"`
	Paid        bool      `json:"paid"`
}

// NewBill holds the caller supplied fields of a bill
type NewBill struct {
	Name        string
	Amount      float64
	Frequency   Frequency
	CategoryID  *string
	WalletID    *string
	NextDueDate time.Time
}

// Validate checks the bill input
func (b NewBill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errs.ErrEmptyName
	}
	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}
	if !IsValidFrequency(string(b.Frequency)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidFrequency, b.Frequency)
	}
	if b.NextDueDate.IsZero() {
		return errs.ErrInvalidRequest
	}
	return nil
}

// IsOverdue reports whether the due date lies before the start of now's day
func (b Bill) IsOverdue(now time.Time) bool {
	return b.NextDueDate.Before(StartOfDay(now))
}

// RolledDueDate returns the first due date in the bill's schedule that is not
// before the start of now's day, and whether it differs from NextDueDate.
// Each step is computed from the original date so that a bill due on the
// 31st lands on the last day of shorter months without drifting.
func (b Bill) RolledDueDate(now time.Time) (time.Time, bool) {
	step := b.Frequency.PeriodMonths()
	if step == 0 || !b.IsOverdue(now) {
		return b.NextDueDate, false
	}

	start := StartOfDay(now)
	due := b.NextDueDate
	for n := step; due.Before(start); n += step {
		due = AddMonthsClamped(b.NextDueDate, n)
	}
	return due, true
}

// AddMonthsClamped adds months to t, clamping the day to the target month's
// last day instead of overflowing into the following month.
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := daysIn(first.Year(), first.Month())
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// MonthRange returns the half-open interval [first day, first day of next month)
// of the month containing t
func MonthRange(t time.Time) (time.Time, time.Time) {
	year, month, _ := t.Date()
	from := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PaymentStatus tells whether a bill payment has settled
type PaymentStatus string

// Payment statuses
const (
	PaymentCleared PaymentStatus = "cleared"
	PaymentPending PaymentStatus = "pending"
)

// IsValidPaymentStatus reports whether the payment status is known
func IsValidPaymentStatus(s string) bool {
	return s == string(PaymentCleared) || s == string(PaymentPending)
}

// BillPayment is the audit record of one bill settlement
type BillPayment struct {
	ID        string        `json:"id"`
	BillID    string        `json:"billId"`
	Amount    float64       `json:"amount"`
	WalletID  *string       `json:"walletId"`
	Status    PaymentStatus `json:"status"`
	PaidAt    time.Time     `json:"paidAt"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewBillPayment holds the caller supplied fields of a bill payment.
// An empty Status means cleared.
type NewBillPayment struct {
	BillID   string
	Amount   float64
	WalletID *string
	Status   PaymentStatus
	PaidAt   *time.Time
}

// Validate checks the payment input and fills the default status
func (p *NewBillPayment) Validate() error {
	if p.BillID == "" {
		return errs.ErrInvalidRequest
	}
	if err := ValidateAmount(p.Amount); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = PaymentCleared
	}
	if !IsValidPaymentStatus(string(p.Status)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidPaymentStatus, p.Status)
	}
	return nil
}
