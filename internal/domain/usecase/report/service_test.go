package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mcore "github.com/amirhossein-jamali/pocket-ledger/mocks/port/core"
	mpers "github.com/amirhossein-jamali/pocket-ledger/mocks/port/persistence"
)

func TestServiceMonthlyOverview(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Aggregates the month", func(t *testing.T) {
		txRepo := mpers.NewMockTransactionRepository(t)
		wallets := mpers.NewMockWalletRepository(t)
		logger := mcore.NewMockLogger(t)

		txRepo.On("Totals", ctx, from, to).Return(5000.0, 1234.56, nil)
		txRepo.On("SumByCategory", ctx, entity.TransactionExpense, from, to).
			Return(map[string]float64{"food": 1000.1 + 0.2, "": 234.26}, nil)
		wallets.On("List", ctx).Return([]entity.Wallet{
			{ID: "w1", Balance: 0.1},
			{ID: "w2", Balance: 0.2},
		}, nil)
		logger.On("Debug", "Monthly overview computed", mock.Anything).Return()

		service := NewReportService(txRepo, wallets, logger)
		overview, err := service.MonthlyOverview(ctx, month)
		require.NoError(t, err)

		assert.Equal(t, "2024-05", overview.Summary.Month)
		assert.Equal(t, 5000.0, overview.Summary.TotalIncome)
		assert.Equal(t, 1234.56, overview.Summary.TotalExpenses)
		assert.Equal(t, 3765.44, overview.Summary.Savings)
		assert.Equal(t, 1000.3, overview.ByCategory["food"])
		assert.Equal(t, 234.26, overview.ByCategory[""])
		assert.Equal(t, 0.3, overview.TotalFunds)
		assert.Len(t, overview.Wallets, 2)
	})

	t.Run("Query failure", func(t *testing.T) {
		txRepo := mpers.NewMockTransactionRepository(t)
		txRepo.On("Totals", ctx, from, to).Return(0.0, 0.0, errors.New("disk I/O error"))

		service := NewReportService(txRepo, mpers.NewMockWalletRepository(t), mcore.NewMockLogger(t))
		_, err := service.MonthlyOverview(ctx, month)
		assert.Error(t, err)
	})
}

func TestTotalFunds(t *testing.T) {
	assert.Equal(t, 0.0, TotalFunds(nil))
	assert.Equal(t, 868.0, TotalFunds([]entity.Wallet{{Balance: 800}, {Balance: 68}}))
	assert.Equal(t, -50.25, TotalFunds([]entity.Wallet{{Balance: 49.75}, {Balance: -100}}))
}
