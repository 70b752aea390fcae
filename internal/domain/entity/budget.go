package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// Budget is a monthly spending ceiling for exactly one category
type Budget struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	MonthlyLimit float64   `json:"monthlyLimit"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewBudget holds the caller supplied fields of a budget
type NewBudget struct {
	CategoryID   string
	MonthlyLimit float64
}

// Validate checks the budget input
func (b NewBudget) Validate() error {
	if b.CategoryID == "" {
		return errs.ErrInvalidRequest
	}
	return ValidateLimit(b.MonthlyLimit)
}

// ValidateLimit checks that a monthly limit is a positive finite number
func ValidateLimit(limit float64) error {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return errs.ErrInvalidLimit
	}
	return nil
}

// BudgetStatus is the spending progress of a budget within one month
type BudgetStatus struct {
	Budget    Budget  `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
	Exceeded  bool    `json:"exceeded"`
}

// NewBudgetStatus derives remaining and percent figures from the spent amount
func NewBudgetStatus(b Budget, spent float64) BudgetStatus {
	spent = RoundAmount(spent)
	status := BudgetStatus{
		Budget:    b,
		Spent:     spent,
		Remaining: RoundAmount(b.MonthlyLimit - spent),
	}
	if b.MonthlyLimit > 0 {
		status.Percent = math.Round(spent/b.MonthlyLimit*10000) / 100
	}
	status.Exceeded = spent > b.MonthlyLimit
	return status
}
