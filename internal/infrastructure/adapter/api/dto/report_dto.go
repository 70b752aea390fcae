package dto

import (
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// MonthlyOverviewResponse represents one month of activity
type MonthlyOverviewResponse struct {
	Month         string            `json:"month"`
	TotalIncome   string            `json:"totalIncome"`
	TotalExpenses string            `json:"totalExpenses"`
	Savings       string            `json:"savings"`
	ByCategory    map[string]string `json:"byCategory"`
	Wallets       []WalletResponse  `json:"wallets"`
	TotalFunds    string            `json:"totalFunds"`
}

// NewMonthlyOverviewResponse converts an overview for the wire
func NewMonthlyOverviewResponse(o *usecase.MonthlyOverview) MonthlyOverviewResponse {
	byCategory := make(map[string]string, len(o.ByCategory))
	for id, total := range o.ByCategory {
		byCategory[id] = entity.FormatAmount(total)
	}

	return MonthlyOverviewResponse{
		Month:         o.Summary.Month,
		TotalIncome:   entity.FormatAmount(o.Summary.TotalIncome),
		TotalExpenses: entity.FormatAmount(o.Summary.TotalExpenses),
		Savings:       entity.FormatAmount(o.Summary.Savings),
		ByCategory:    byCategory,
		Wallets:       NewWalletResponses(o.Wallets),
		TotalFunds:    entity.FormatAmount(o.TotalFunds),
	}
}
