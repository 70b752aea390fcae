package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// Service handles budget creation and monthly spending reports
type Service struct {
	budgets      persistence.BudgetRepository
	categories   persistence.CategoryRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

var _ usecase.BudgetUseCase = (*Service)(nil)

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgets persistence.BudgetRepository,
	categories persistence.CategoryRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		budgets:      budgets,
		categories:   categories,
		transactions: transactions,
		logger:       logger,
	}
}

// Create adds a budget for an existing category
func (s *Service) Create(ctx context.Context, categoryID string, monthlyLimit string) (*entity.Budget, error) {
	limit, err := entity.ParseAmount(monthlyLimit)
	if err != nil {
		return nil, err
	}

	newBudget := entity.NewBudget{CategoryID: categoryID, MonthlyLimit: limit}
	if err := newBudget.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", errs.ErrNotFound, categoryID)
	}

	// The unique index is authoritative; this only gives a clearer error early
	existing, err := s.budgets.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConstraintError("budget", errs.ConstraintUnique,
			fmt.Errorf("%w: category %s", errs.ErrDuplicateBudget, category.Name))
	}

	budget, err := s.budgets.Create(ctx, newBudget)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Budget created", map[string]any{
		"budget_id":     budget.ID,
		"category":      category.Name,
		"monthly_limit": entity.FormatAmount(budget.MonthlyLimit),
	})
	return budget, nil
}

// Status reports expense totals against every budget for the given month
func (s *Service) Status(ctx context.Context, month time.Time) ([]entity.BudgetStatus, error) {
	budgets, err := s.budgets.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []entity.BudgetStatus{}, nil
	}

	from, to := entity.MonthRange(month)
	spent, err := s.transactions.SumByCategory(ctx, entity.TransactionExpense, from, to)
	if err != nil {
		return nil, err
	}

	statuses := make([]entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		status := entity.NewBudgetStatus(b, spent[b.CategoryID])
		if status.Exceeded {
			s.logger.Debug("Budget exceeded", map[string]any{
				"budget_id": b.ID,
				"spent":     entity.FormatAmount(status.Spent),
				"month":     from.Format("2006-01"),
			})
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
