package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (persistence.Repositories, *database.TestDBManager) {
	t.Helper()
	return database.SetupTestRepositories(t, logger.NewNoopLogger())
}

func strPtr(s string) *string {
	return &s
}

func countTransactions(t *testing.T, m *database.TestDBManager) int64 {
	t.Helper()
	var count int64
	require.NoError(t, m.Manager.DB().Model(&model.Transaction{}).Count(&count).Error)
	return count
}

func walletBalance(t *testing.T, repos persistence.Repositories, id string) float64 {
	t.Helper()
	wallet, err := repos.Wallets.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	return wallet.Balance
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repos, _ := setup(t)

	user, err := repos.Users.GetFirst(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.OnboardingCompleted)

	byID, err := repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	updated, err := repos.Users.UpdatePreferences(ctx, user.ID, entity.CurrencyUSD, entity.LocaleEnUS)
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyUSD, updated.Currency)
	assert.Equal(t, entity.LocaleEnUS, updated.Locale)

	_, err = repos.Users.UpdatePreferences(ctx, user.ID, "GBP", entity.LocaleEnUS)
	assert.ErrorIs(t, err, errs.ErrInvalidCurrency)

	completed, err := repos.Users.CompleteOnboarding(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, completed.OnboardingCompleted)

	_, err = repos.Users.CompleteOnboarding(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	missing, err := repos.Users.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	t.Run("Wallet", func(t *testing.T) {
		created, err := repos.Wallets.Create(ctx, entity.NewWallet{Name: "Cash", Type: entity.WalletCash, Balance: 100})
		require.NoError(t, err)

		fetched, err := repos.Wallets.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("Category", func(t *testing.T) {
		created, err := repos.Categories.Create(ctx, entity.NewCategory{
			Name:     "pets",
			Icon:     strPtr("paw"),
			Color:    strPtr("#aa8800"),
			IsCustom: true,
		})
		require.NoError(t, err)

		fetched, err := repos.Categories.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)

		names, err := repos.Categories.ListNames(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "pets")
		assert.Contains(t, names, "groceries")
		assert.Len(t, names, len(entity.DefaultCategoryNames)+1)
	})

	t.Run("Budget", func(t *testing.T) {
		category := m.CreateTestCategory(t, "books")
		created, err := repos.Budgets.Create(ctx, entity.NewBudget{CategoryID: category.ID, MonthlyLimit: 250})
		require.NoError(t, err)

		fetched, err := repos.Budgets.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("Transaction", func(t *testing.T) {
		wallet := m.CreateTestWallet(t, "Wallet", entity.WalletCash, 10)
		occurred := time.Date(2024, 3, 4, 5, 6, 7, 890000000, time.UTC)

		created, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount:     4.5,
			Type:       entity.TransactionIncome,
			WalletID:   &wallet.ID,
			Note:       strPtr("refund"),
			OccurredAt: &occurred,
		})
		require.NoError(t, err)
		assert.Equal(t, occurred, created.OccurredAt)

		fetched, err := repos.Transactions.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("Bill and payment", func(t *testing.T) {
		created, err := repos.Bills.Create(ctx, entity.NewBill{
			Name:        "Internet",
			Amount:      300,
			Frequency:   entity.FrequencyMonthly,
			NextDueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.True(t, created.Active)
		assert.False(t, created.Paid)

		fetched, err := repos.Bills.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)

		payment, err := repos.BillPayments.Create(ctx, entity.NewBillPayment{BillID: created.ID, Amount: 300})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCleared, payment.Status)

		fetchedPayment, err := repos.BillPayments.GetByID(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, payment, fetchedPayment)
	})
}

func TestExpenseUpdatesOnlySourceWallet(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	cash := m.CreateTestWallet(t, "Cash", entity.WalletCash, 100)
	bank := m.CreateTestWallet(t, "Bank", entity.WalletBank, 0)

	tx, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
		Amount:   30,
		Type:     entity.TransactionExpense,
		WalletID: &cash.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionExpense, tx.Type)

	assert.Equal(t, 70.0, walletBalance(t, repos, cash.ID))
	assert.Equal(t, 0.0, walletBalance(t, repos, bank.ID))
	assert.Equal(t, int64(1), countTransactions(t, m))
}

func TestTransferConservesBalance(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	cash := m.CreateTestWallet(t, "Cash", entity.WalletCash, 70)
	bank := m.CreateTestWallet(t, "Bank", entity.WalletBank, 0)

	_, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
		Amount:         50,
		Type:           entity.TransactionTransfer,
		WalletID:       &cash.ID,
		TargetWalletID: &bank.ID,
	})
	require.NoError(t, err)

	cashAfter := walletBalance(t, repos, cash.ID)
	bankAfter := walletBalance(t, repos, bank.ID)
	assert.Equal(t, 20.0, cashAfter)
	assert.Equal(t, 50.0, bankAfter)
	assert.Equal(t, 70.0, cashAfter+bankAfter)

	_, err = repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
		Amount:         10,
		Type:           entity.TransactionTransfer,
		WalletID:       &cash.ID,
		TargetWalletID: &cash.ID,
	})
	assert.ErrorIs(t, err, errs.ErrSameWallet)
	assert.Equal(t, 20.0, walletBalance(t, repos, cash.ID))
	assert.Equal(t, 50.0, walletBalance(t, repos, bank.ID))
	assert.Equal(t, int64(1), countTransactions(t, m))
}

func TestCreateAndApplyIsAtomic(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	cash := m.CreateTestWallet(t, "Cash", entity.WalletCash, 100)

	t.Run("Missing wallet", func(t *testing.T) {
		_, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount:   30,
			Type:     entity.TransactionExpense,
			WalletID: strPtr("no-such-wallet"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
		assert.Zero(t, countTransactions(t, m))
	})

	t.Run("Missing transfer target keeps source untouched", func(t *testing.T) {
		_, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount:         30,
			Type:           entity.TransactionTransfer,
			WalletID:       &cash.ID,
			TargetWalletID: strPtr("no-such-wallet"),
		})
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
		assert.Equal(t, 100.0, walletBalance(t, repos, cash.ID))
		assert.Zero(t, countTransactions(t, m))
	})

	t.Run("Unknown category rolls back the balance", func(t *testing.T) {
		_, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount:     30,
			Type:       entity.TransactionExpense,
			WalletID:   &cash.ID,
			CategoryID: strPtr("no-such-category"),
		})
		require.Error(t, err)
		assert.True(t, errs.IsConstraintError(err))
		assert.Equal(t, 100.0, walletBalance(t, repos, cash.ID))
		assert.Zero(t, countTransactions(t, m))
	})

	t.Run("Validation runs before any write", func(t *testing.T) {
		_, err := repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount: 30,
			Type:   entity.TransactionIncome,
		})
		assert.ErrorIs(t, err, errs.ErrMissingWallet)

		_, err = repos.Transactions.CreateAndApply(ctx, entity.NewTransaction{
			Amount:   -1,
			Type:     entity.TransactionIncome,
			WalletID: &cash.ID,
		})
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Equal(t, 100.0, walletBalance(t, repos, cash.ID))
	})
}

func TestBudgetUniqueness(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	groceries, err := repos.Categories.GetByName(ctx, "groceries")
	require.NoError(t, err)
	require.NotNil(t, groceries)

	first, err := repos.Budgets.Create(ctx, entity.NewBudget{CategoryID: groceries.ID, MonthlyLimit: 500})
	require.NoError(t, err)

	_, err = repos.Budgets.Create(ctx, entity.NewBudget{CategoryID: groceries.ID, MonthlyLimit: 900})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	assert.ErrorIs(t, err, errs.ErrDuplicateBudget)

	var count int64
	require.NoError(t, m.Manager.DB().Model(&model.Budget{}).Where("category_id = ?", groceries.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	existing, err := repos.Budgets.GetByCategoryID(ctx, groceries.ID)
	require.NoError(t, err)
	assert.Equal(t, first, existing)
}

func TestBudgetUpdateLimit(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	category := m.CreateTestCategory(t, "travel")
	budget, err := repos.Budgets.Create(ctx, entity.NewBudget{CategoryID: category.ID, MonthlyLimit: 100})
	require.NoError(t, err)

	updated, err := repos.Budgets.UpdateLimit(ctx, budget.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.MonthlyLimit)

	_, err = repos.Budgets.UpdateLimit(ctx, budget.ID, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidLimit)

	_, err = repos.Budgets.UpdateLimit(ctx, "missing", 10)
	assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
}

func TestWalletBalanceUpdates(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	wallet := m.CreateTestWallet(t, "Bank", entity.WalletBank, 10)

	updated, err := repos.Wallets.UpdateBalance(ctx, wallet.ID, -25.5)
	require.NoError(t, err)
	assert.Equal(t, -15.5, updated.Balance)

	set, err := repos.Wallets.SetBalance(ctx, wallet.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, set.Balance)

	_, err = repos.Wallets.UpdateBalance(ctx, "missing", 1)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)

	_, err = repos.Wallets.SetBalance(ctx, "missing", 1)
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)

	byType, err := repos.Wallets.GetByType(ctx, entity.WalletBank)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, byType.ID)

	none, err := repos.Wallets.GetByType(ctx, entity.WalletCash)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestTransactionQueries(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	cash := m.CreateTestWallet(t, "Cash", entity.WalletCash, 0)
	bank := m.CreateTestWallet(t, "Bank", entity.WalletBank, 0)
	food := m.CreateTestCategory(t, "food")

	at := func(day int) *time.Time {
		ts := time.Date(2024, 4, day, 12, 0, 0, 0, time.UTC)
		return &ts
	}
	create := func(tx entity.NewTransaction) {
		_, err := repos.Transactions.CreateAndApply(ctx, tx)
		require.NoError(t, err)
	}

	create(entity.NewTransaction{Amount: 1000, Type: entity.TransactionIncome, WalletID: &bank.ID, OccurredAt: at(1)})
	create(entity.NewTransaction{Amount: 40.25, Type: entity.TransactionExpense, WalletID: &cash.ID, CategoryID: &food.ID, OccurredAt: at(3)})
	create(entity.NewTransaction{Amount: 9.75, Type: entity.TransactionExpense, WalletID: &cash.ID, CategoryID: &food.ID, OccurredAt: at(5)})
	create(entity.NewTransaction{Amount: 5, Type: entity.TransactionExpense, WalletID: &cash.ID, OccurredAt: at(7)})
	create(entity.NewTransaction{Amount: 200, Type: entity.TransactionTransfer, WalletID: &bank.ID, TargetWalletID: &cash.ID, OccurredAt: at(9)})

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	create(entity.NewTransaction{Amount: 77, Type: entity.TransactionExpense, WalletID: &cash.ID, OccurredAt: &to})

	t.Run("List is most recent first", func(t *testing.T) {
		all, err := repos.Transactions.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 6)
		assert.Equal(t, 77.0, all[0].Amount)
		assert.Equal(t, 1000.0, all[5].Amount)
	})

	t.Run("ListBetween is half open", func(t *testing.T) {
		april, err := repos.Transactions.ListBetween(ctx, from, to)
		require.NoError(t, err)
		assert.Len(t, april, 5)
	})

	t.Run("ListByWallet includes transfer targets", func(t *testing.T) {
		byCash, err := repos.Transactions.ListByWallet(ctx, cash.ID)
		require.NoError(t, err)
		assert.Len(t, byCash, 5)
	})

	t.Run("SumByCategory", func(t *testing.T) {
		sums, err := repos.Transactions.SumByCategory(ctx, entity.TransactionExpense, from, to)
		require.NoError(t, err)
		assert.Equal(t, 50.0, sums[food.ID])
		assert.Equal(t, 5.0, sums[""])
	})

	t.Run("Totals exclude transfers", func(t *testing.T) {
		income, expenses, err := repos.Transactions.Totals(ctx, from, to)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, income)
		assert.Equal(t, 55.0, expenses)
	})

	t.Run("Balances", func(t *testing.T) {
		assert.Equal(t, 800.0, walletBalance(t, repos, bank.ID))
		assert.Equal(t, 68.0, walletBalance(t, repos, cash.ID))
	})
}

func TestBillRepository(t *testing.T) {
	ctx := context.Background()
	repos, _ := setup(t)

	later, err := repos.Bills.Create(ctx, entity.NewBill{
		Name: "Rent", Amount: 5000, Frequency: entity.FrequencyMonthly,
		NextDueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	sooner, err := repos.Bills.Create(ctx, entity.NewBill{
		Name: "Gym", Amount: 400, Frequency: entity.FrequencyQuarterly,
		NextDueDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	bills, err := repos.Bills.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, sooner.ID, bills[0].ID)
	assert.Equal(t, later.ID, bills[1].ID)

	paid, err := repos.Bills.SetPaid(ctx, later.ID, true)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	next := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	moved, err := repos.Bills.UpdateSchedule(ctx, later.ID, next)
	require.NoError(t, err)
	assert.Equal(t, next, moved.NextDueDate)
	assert.False(t, moved.Paid)

	_, err = repos.Bills.SetPaid(ctx, "missing", true)
	assert.ErrorIs(t, err, errs.ErrBillNotFound)

	_, err = repos.BillPayments.Create(ctx, entity.NewBillPayment{BillID: "missing", Amount: 1})
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 1, 0)
	_, err = repos.BillPayments.Create(ctx, entity.NewBillPayment{BillID: later.ID, Amount: 5000, PaidAt: &first})
	require.NoError(t, err)
	_, err = repos.BillPayments.Create(ctx, entity.NewBillPayment{BillID: later.ID, Amount: 5000, PaidAt: &second, Status: entity.PaymentPending})
	require.NoError(t, err)

	payments, err := repos.BillPayments.ListByBill(ctx, later.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, second, payments[0].PaidAt)
	assert.Equal(t, entity.PaymentPending, payments[0].Status)
}

func TestCheckConstraints(t *testing.T) {
	_, m := setup(t)
	db := m.Manager.DB()

	err := db.Exec(`INSERT INTO transactions (id, amount, type, occurred_at, created_at) VALUES ('t1', 1, 'gift', ?, ?)`,
		time.Now().UTC(), time.Now().UTC()).Error
	assert.Error(t, err)

	err = db.Exec(`INSERT INTO bills (id, name, amount, frequency, next_due_date, active, paid) VALUES ('b1', 'x', 1, 'weekly', ?, TRUE, FALSE)`,
		time.Now().UTC()).Error
	assert.Error(t, err)
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	wallet := m.CreateTestWallet(t, "Cash", entity.WalletCash, 50)

	txCtx, err := repos.UnitOfWork.Begin(ctx)
	require.NoError(t, err)

	_, err = repos.UnitOfWork.GetTransactionRepository(txCtx).CreateAndApply(txCtx, entity.NewTransaction{
		Amount: 20, Type: entity.TransactionExpense, WalletID: &wallet.ID,
	})
	require.NoError(t, err)
	require.NoError(t, repos.UnitOfWork.Rollback(txCtx))

	assert.Equal(t, 50.0, walletBalance(t, repos, wallet.ID))
	assert.Zero(t, countTransactions(t, m))

	// Rolling back twice is harmless
	assert.NoError(t, repos.UnitOfWork.Rollback(txCtx))

	txCtx, err = repos.UnitOfWork.Begin(ctx)
	require.NoError(t, err)
	_, err = repos.UnitOfWork.GetWalletRepository(txCtx).UpdateBalance(txCtx, wallet.ID, 5)
	require.NoError(t, err)
	require.NoError(t, repos.UnitOfWork.Commit(txCtx))
	assert.NoError(t, repos.UnitOfWork.Rollback(txCtx))

	assert.Equal(t, 55.0, walletBalance(t, repos, wallet.ID))
}

func TestCancelledContextReachesCaller(t *testing.T) {
	repos, _ := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.Wallets.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, errs.ErrDatabaseConnection))
}

func TestBusyWriterErrorKeepsDriverCode(t *testing.T) {
	ctx := context.Background()
	repos, m := setup(t)

	txCtx, err := repos.UnitOfWork.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.UnitOfWork.Rollback(txCtx) })

	cfg := *m.Config
	cfg.BusyTimeout = 50 * time.Millisecond
	other := database.NewManager(&cfg, m.Logger, m.TimeProvider, m.IDGenerator)
	_, err = other.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	_, err = other.Repositories().Wallets.Create(ctx, entity.NewWallet{Name: "Bank", Type: entity.WalletBank})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)

	var sqliteErr sqlite3.Error
	require.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
}
