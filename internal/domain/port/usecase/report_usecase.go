package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// MonthlyOverview aggregates one month of activity
type MonthlyOverview struct {
	Summary    entity.MonthlySummary `json:"summary"`
	ByCategory map[string]float64    `json:"byCategory"`
	Wallets    []entity.Wallet       `json:"wallets"`
	TotalFunds float64               `json:"totalFunds"`
}

// ReportUseCase defines read-only reporting operations
type ReportUseCase interface {
	// MonthlyOverview computes income, expenses and savings for the month
	// containing month
	MonthlyOverview(ctx context.Context, month time.Time) (*MonthlyOverview, error)
}
