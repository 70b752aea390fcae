package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-ledger/internal/app"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

var testNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func testConfig(t *testing.T, env string) *config.Config {
	t.Helper()

	return &config.Config{
		Environment: env,
		Database: config.DatabaseConfig{
			Driver:   config.DriverSQLite,
			Path:     filepath.Join(t.TempDir(), "ledger.db"),
			LogLevel: "silent",
		},
		Ledger: config.LedgerConfig{
			DefaultCurrency: string(entity.CurrencyEGP),
			DefaultLocale:   string(entity.LocaleArEG),
			IDScheme:        config.IDSchemeULID,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()

	clock := timeProvider.NewFixedTimeProvider(testNow)
	a := app.New(cfg, logger.NewNoopLogger(), clock, idgen.NewULIDGenerator(clock))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestInitializeFreshDatabase(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, testConfig(t, config.Test))

	repos, err := a.Initialize(ctx)
	require.NoError(t, err)

	user, err := repos.Users.GetFirst(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.OnboardingCompleted)
	assert.Equal(t, entity.CurrencyEGP, user.Currency)

	categories, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(entity.DefaultCategoryNames))
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, testConfig(t, config.Test))

	for i := 0; i < 3; i++ {
		_, err := a.Initialize(ctx)
		require.NoError(t, err)
	}

	var users int64
	require.NoError(t, a.Manager().DB().Table("users").Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestSeedTwiceKeepsOneRent(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, testConfig(t, config.Test))

	first, err := a.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, first.UserCreated)

	second, err := a.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, second.UserCreated)
	assert.Zero(t, second.CategoriesCreated)

	var rent int64
	require.NoError(t, a.Manager().DB().Table("categories").Where("name = ?", "rent").Count(&rent).Error)
	assert.Equal(t, int64(1), rent)
}

func TestCloseAndReopen(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, testConfig(t, config.Test))

	repos, err := a.Initialize(ctx)
	require.NoError(t, err)
	_, err = repos.Wallets.Create(ctx, entity.NewWallet{Name: "Cash", Type: entity.WalletCash, Balance: 100})
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Nil(t, a.Manager().DB())

	repos, err = a.Initialize(ctx)
	require.NoError(t, err)

	wallets, err := repos.Wallets.List(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, 100.0, wallets[0].Balance)
}

func TestResetDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("Development wipes everything", func(t *testing.T) {
		cfg := testConfig(t, config.Development)
		a := newTestApp(t, cfg)

		repos, err := a.Initialize(ctx)
		require.NoError(t, err)
		_, err = repos.Wallets.Create(ctx, entity.NewWallet{Name: "Cash", Type: entity.WalletCash, Balance: 100})
		require.NoError(t, err)

		require.NoError(t, a.ResetDatabase(ctx))

		_, statErr := os.Stat(cfg.Database.Path)
		assert.True(t, os.IsNotExist(statErr))

		repos, err = a.Initialize(ctx)
		require.NoError(t, err)

		wallets, err := repos.Wallets.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, wallets)

		user, err := repos.Users.GetFirst(ctx)
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Production refuses", func(t *testing.T) {
		cfg := testConfig(t, config.Production)
		a := newTestApp(t, cfg)

		_, err := a.Initialize(ctx)
		require.NoError(t, err)

		err = a.ResetDatabase(ctx)
		assert.ErrorIs(t, err, errs.ErrResetNotAllowed)

		_, statErr := os.Stat(cfg.Database.Path)
		assert.NoError(t, statErr)
	})
}

func TestServicesEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.Test)
	a := newTestApp(t, cfg)

	services, err := a.Services(ctx)
	require.NoError(t, err)

	wallets, err := services.Onboarding.PrimeWallets(ctx, "100", "0")
	require.NoError(t, err)
	cash, bank := wallets[0], wallets[1]

	t.Run("Expense", func(t *testing.T) {
		txn, err := services.Transactions.Create(ctx, usecase.TransactionRequest{
			Amount:   "30",
			Type:     "expense",
			WalletID: &cash.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionExpense, txn.Type)

		got, err := services.Repositories.Wallets.GetByID(ctx, cash.ID)
		require.NoError(t, err)
		assert.Equal(t, 70.0, got.Balance)
	})

	t.Run("Transfer", func(t *testing.T) {
		_, err := services.Transactions.Create(ctx, usecase.TransactionRequest{
			Amount:         "50",
			Type:           "transfer",
			WalletID:       &cash.ID,
			TargetWalletID: &bank.ID,
		})
		require.NoError(t, err)

		_, err = services.Transactions.Create(ctx, usecase.TransactionRequest{
			Amount:         "10",
			Type:           "transfer",
			WalletID:       &cash.ID,
			TargetWalletID: &cash.ID,
		})
		assert.ErrorIs(t, err, errs.ErrSameWallet)

		list, err := services.Repositories.Wallets.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 70.0, list[0].Balance+list[1].Balance)
	})

	t.Run("Budget status", func(t *testing.T) {
		groceries, err := services.Repositories.Categories.GetByName(ctx, "groceries")
		require.NoError(t, err)
		require.NotNil(t, groceries)

		_, err = services.Budgets.Create(ctx, groceries.ID, "500")
		require.NoError(t, err)
		_, err = services.Budgets.Create(ctx, groceries.ID, "600")
		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)

		_, err = services.Transactions.Create(ctx, usecase.TransactionRequest{
			Amount:     "5",
			Type:       "expense",
			WalletID:   &bank.ID,
			CategoryID: &groceries.ID,
		})
		require.NoError(t, err)

		statuses, err := services.Budgets.Status(ctx, testNow)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, 5.0, statuses[0].Spent)
		assert.Equal(t, 500.0, statuses[0].Budget.MonthlyLimit)
	})

	t.Run("Monthly overview", func(t *testing.T) {
		overview, err := services.Reports.MonthlyOverview(ctx, testNow)
		require.NoError(t, err)

		assert.Equal(t, 35.0, overview.Summary.TotalExpenses)
		assert.Equal(t, 0.0, overview.Summary.TotalIncome)
		assert.Equal(t, 65.0, overview.TotalFunds)
	})
}

func TestBillLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.Test)
	cfg.Ledger.RollBillsOnInit = true
	a := newTestApp(t, cfg)

	repos, err := a.Initialize(ctx)
	require.NoError(t, err)

	bank, err := repos.Wallets.Create(ctx, entity.NewWallet{Name: "Bank", Type: entity.WalletBank, Balance: 1000})
	require.NoError(t, err)
	rent, err := repos.Bills.Create(ctx, entity.NewBill{
		Name:        "Rent",
		Amount:      400,
		Frequency:   entity.FrequencyMonthly,
		WalletID:    &bank.ID,
		NextDueDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = repos.Bills.SetPaid(ctx, rent.ID, true)
	require.NoError(t, err)

	services, err := a.Services(ctx)
	require.NoError(t, err)

	rolled, err := repos.Bills.GetByID(ctx, rent.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), rolled.NextDueDate)
	assert.False(t, rolled.Paid)

	again, err := services.Bills.RollForward(ctx, testNow)
	require.NoError(t, err)
	assert.Empty(t, again.Rolled)

	t.Run("Pay books the expense", func(t *testing.T) {
		result, err := services.Bills.Pay(ctx, usecase.PayBillRequest{BillID: rent.ID})
		require.NoError(t, err)

		assert.True(t, result.Bill.Paid)
		require.NotNil(t, result.Transaction)
		assert.Equal(t, 400.0, result.Transaction.Amount)

		wallet, err := repos.Wallets.GetByID(ctx, bank.ID)
		require.NoError(t, err)
		assert.Equal(t, 600.0, wallet.Balance)

		payments, err := repos.BillPayments.ListByBill(ctx, rent.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("Failed payment leaves nothing behind", func(t *testing.T) {
		missing := "no-such-wallet"
		_, err := repos.Bills.SetPaid(ctx, rent.ID, false)
		require.NoError(t, err)

		_, err = services.Bills.Pay(ctx, usecase.PayBillRequest{BillID: rent.ID, WalletID: &missing})
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)

		b, err := repos.Bills.GetByID(ctx, rent.ID)
		require.NoError(t, err)
		assert.False(t, b.Paid)

		payments, err := repos.BillPayments.ListByBill(ctx, rent.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)

		wallet, err := repos.Wallets.GetByID(ctx, bank.ID)
		require.NoError(t, err)
		assert.Equal(t, 600.0, wallet.Balance)
	})
}
