package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// Service computes read-only summaries over the ledger
type Service struct {
	transactions persistence.TransactionRepository
	wallets      persistence.WalletRepository
	logger       coreport.Logger
}

var _ usecase.ReportUseCase = (*Service)(nil)

// NewReportService creates a new report service
func NewReportService(
	transactions persistence.TransactionRepository,
	wallets persistence.WalletRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactions: transactions,
		wallets:      wallets,
		logger:       logger,
	}
}

// MonthlyOverview aggregates income, expenses per category and the current
// wallet balances. Transfers move money between wallets and are excluded
// from both income and expenses.
func (s *Service) MonthlyOverview(ctx context.Context, month time.Time) (*usecase.MonthlyOverview, error) {
	from, to := entity.MonthRange(month)

	income, expenses, err := s.transactions.Totals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.transactions.SumByCategory(ctx, entity.TransactionExpense, from, to)
	if err != nil {
		return nil, err
	}
	for id, total := range byCategory {
		byCategory[id] = entity.RoundAmount(total)
	}

	wallets, err := s.wallets.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Monthly overview computed", map[string]any{
		"month":      from.Format("2006-01"),
		"categories": len(byCategory),
		"wallets":    len(wallets),
	})

	return &usecase.MonthlyOverview{
		Summary:    entity.NewMonthlySummary(from, income, expenses),
		ByCategory: byCategory,
		Wallets:    wallets,
		TotalFunds: TotalFunds(wallets),
	}, nil
}

// TotalFunds sums wallet balances without accumulating float error
func TotalFunds(wallets []entity.Wallet) float64 {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(decimal.NewFromFloat(w.Balance))
	}
	return total.Round(entity.MaxDecimalPlaces).InexactFloat64()
}
