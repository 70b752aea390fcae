package dto

import (
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// BudgetRequest represents the API request for creating a budget
type BudgetRequest struct {
	CategoryID   string `json:"categoryId" binding:"required"`
	MonthlyLimit string `json:"monthlyLimit" binding:"required"`
}

// BudgetLimitRequest changes the monthly limit of a budget
type BudgetLimitRequest struct {
	MonthlyLimit string `json:"monthlyLimit" binding:"required"`
}

// BudgetResponse represents a budget
type BudgetResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	MonthlyLimit string    `json:"monthlyLimit"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BudgetStatusResponse represents spending against a budget
type BudgetStatusResponse struct {
	Budget    BudgetResponse `json:"budget"`
	Spent     string         `json:"spent"`
	Remaining string         `json:"remaining"`
	Percent   float64        `json:"percent"`
	Exceeded  bool           `json:"exceeded"`
}

// NewBudgetResponse converts a budget entity for the wire
func NewBudgetResponse(b entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		MonthlyLimit: entity.FormatAmount(b.MonthlyLimit),
		CreatedAt:    b.CreatedAt,
	}
}

// NewBudgetStatusResponses converts budget statuses for the wire
func NewBudgetStatusResponses(statuses []entity.BudgetStatus) []BudgetStatusResponse {
	out := make([]BudgetStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, BudgetStatusResponse{
			Budget:    NewBudgetResponse(s.Budget),
			Spent:     entity.FormatAmount(s.Spent),
			Remaining: entity.FormatAmount(s.Remaining),
			Percent:   s.Percent,
			Exceeded:  s.Exceeded,
		})
	}
	return out
}
