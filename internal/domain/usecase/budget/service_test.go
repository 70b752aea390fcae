package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	mcore "github.com/amirhossein-jamali/pocket-ledger/mocks/port/core"
	mpers "github.com/amirhossein-jamali/pocket-ledger/mocks/port/persistence"
)

type fixture struct {
	budgets      *mpers.MockBudgetRepository
	categories   *mpers.MockCategoryRepository
	transactions *mpers.MockTransactionRepository
	logger       *mcore.MockLogger
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		budgets:      mpers.NewMockBudgetRepository(t),
		categories:   mpers.NewMockCategoryRepository(t),
		transactions: mpers.NewMockTransactionRepository(t),
		logger:       mcore.NewMockLogger(t),
	}
	f.service = NewBudgetService(f.budgets, f.categories, f.transactions, f.logger)
	return f
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	groceries := &entity.Category{ID: "c-groceries", Name: "groceries"}

	t.Run("Creates a budget", func(t *testing.T) {
		f := newFixture(t)
		f.categories.On("GetByID", ctx, "c-groceries").Return(groceries, nil)
		f.budgets.On("GetByCategoryID", ctx, "c-groceries").Return(nil, nil)
		f.budgets.On("Create", ctx, entity.NewBudget{CategoryID: "c-groceries", MonthlyLimit: 2000}).
			Return(&entity.Budget{ID: "b1", CategoryID: "c-groceries", MonthlyLimit: 2000}, nil)
		f.logger.On("Info", "Budget created", mock.Anything).Return()

		budget, err := f.service.Create(ctx, "c-groceries", "2000")

		require.NoError(t, err)
		assert.Equal(t, "b1", budget.ID)
	})

	t.Run("Second budget for a category is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.categories.On("GetByID", ctx, "c-groceries").Return(groceries, nil)
		f.budgets.On("GetByCategoryID", ctx, "c-groceries").
			Return(&entity.Budget{ID: "b1", CategoryID: "c-groceries", MonthlyLimit: 2000}, nil)

		_, err := f.service.Create(ctx, "c-groceries", "500")

		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)
		assert.True(t, errs.IsConstraintError(err))
	})

	t.Run("Race lost at insert still reports a duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.categories.On("GetByID", ctx, "c-groceries").Return(groceries, nil)
		f.budgets.On("GetByCategoryID", ctx, "c-groceries").Return(nil, nil)
		f.budgets.On("Create", ctx, mock.Anything).
			Return(nil, errs.NewConstraintError("budget", errs.ConstraintUnique, errs.ErrDuplicateBudget))

		_, err := f.service.Create(ctx, "c-groceries", "500")
		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)
	})

	t.Run("Unknown category", func(t *testing.T) {
		f := newFixture(t)
		f.categories.On("GetByID", ctx, "nope").Return(nil, nil)

		_, err := f.service.Create(ctx, "nope", "500")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Limit must be positive", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, "c-groceries", "0")
		assert.ErrorIs(t, err, errs.ErrInvalidLimit)

		_, err = f.service.Create(ctx, "c-groceries", "ten")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestServiceStatus(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Computes spending per budget", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.On("List", ctx).Return([]entity.Budget{
			{ID: "b1", CategoryID: "food", MonthlyLimit: 1000},
			{ID: "b2", CategoryID: "fuel", MonthlyLimit: 200},
			{ID: "b3", CategoryID: "gifts", MonthlyLimit: 300},
		}, nil)
		f.transactions.On("SumByCategory", ctx, entity.TransactionExpense, from, to).
			Return(map[string]float64{"food": 250, "fuel": 260}, nil)
		f.logger.On("Debug", "Budget exceeded", mock.Anything).Return().Once()

		statuses, err := f.service.Status(ctx, month)
		require.NoError(t, err)
		require.Len(t, statuses, 3)

		assert.Equal(t, 250.0, statuses[0].Spent)
		assert.Equal(t, 750.0, statuses[0].Remaining)
		assert.Equal(t, 25.0, statuses[0].Percent)
		assert.False(t, statuses[0].Exceeded)

		assert.True(t, statuses[1].Exceeded)
		assert.Equal(t, -60.0, statuses[1].Remaining)

		assert.Equal(t, 0.0, statuses[2].Spent)
	})

	t.Run("No budgets skips the aggregate query", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.On("List", ctx).Return([]entity.Budget{}, nil)

		statuses, err := f.service.Status(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, statuses)
		f.transactions.AssertNotCalled(t, "SumByCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
