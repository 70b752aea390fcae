package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// BudgetUseCase defines methods for budget-related business operations
type BudgetUseCase interface {
	// Create adds a budget for a category. A second budget for the same
	// category fails with ErrDuplicateBudget.
	Create(ctx context.Context, categoryID string, monthlyLimit string) (*entity.Budget, error)

	// Status reports spending against every budget for the month containing month
	Status(ctx context.Context, month time.Time) ([]entity.BudgetStatus, error)
}
