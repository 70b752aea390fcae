package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// BudgetRepository defines methods to interact with budget data
type BudgetRepository interface {
	// List returns all budgets ordered by creation time ascending
	List(ctx context.Context) ([]entity.Budget, error)

	// GetByID retrieves a budget by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.Budget, error)

	// GetByCategoryID returns the budget of a category, or (nil, nil)
	GetByCategoryID(ctx context.Context, categoryID string) (*entity.Budget, error)

	// Create inserts a budget and returns the stored row
	//
	// Possible errors:
	// - ErrConstraintViolation (ErrDuplicateBudget): If the category already has a budget
	// - ErrConstraintViolation: If the category doesn't exist
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, budget entity.NewBudget) (*entity.Budget, error)

	// UpdateLimit changes the monthly limit of a budget
	//
	// Possible errors:
	// - ErrBudgetNotFound: If budget doesn't exist
	UpdateLimit(ctx context.Context, id string, limit float64) (*entity.Budget, error)
}
