package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewTransactionValidate(t *testing.T) {
	cash := strPtr("wallet-cash")
	bank := strPtr("wallet-bank")

	t.Run("Valid expense", func(t *testing.T) {
		tx := NewTransaction{Amount: 30, Type: TransactionExpense, WalletID: cash}
		require.NoError(t, tx.Validate())
	})

	t.Run("Valid income", func(t *testing.T) {
		tx := NewTransaction{Amount: 1500, Type: TransactionIncome, WalletID: bank}
		require.NoError(t, tx.Validate())
	})

	t.Run("Valid transfer", func(t *testing.T) {
		tx := NewTransaction{Amount: 50, Type: TransactionTransfer, WalletID: cash, TargetWalletID: bank}
		require.NoError(t, tx.Validate())
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		tx := NewTransaction{Amount: 0, Type: TransactionExpense, WalletID: cash}
		require.NoError(t, tx.Validate())
	})

	testCases := []struct {
		name        string
		tx          NewTransaction
		expectedErr error
	}{
		{
			name:        "Expense without wallet",
			tx:          NewTransaction{Amount: 30, Type: TransactionExpense},
			expectedErr: errs.ErrMissingWallet,
		},
		{
			name:        "Income with empty wallet id",
			tx:          NewTransaction{Amount: 30, Type: TransactionIncome, WalletID: strPtr("")},
			expectedErr: errs.ErrMissingWallet,
		},
		{
			name:        "Transfer without source",
			tx:          NewTransaction{Amount: 30, Type: TransactionTransfer, TargetWalletID: bank},
			expectedErr: errs.ErrMissingWallet,
		},
		{
			name:        "Transfer without target",
			tx:          NewTransaction{Amount: 30, Type: TransactionTransfer, WalletID: cash},
			expectedErr: errs.ErrMissingTargetWallet,
		},
		{
			name:        "Transfer to same wallet",
			tx:          NewTransaction{Amount: 30, Type: TransactionTransfer, WalletID: cash, TargetWalletID: strPtr("wallet-cash")},
			expectedErr: errs.ErrSameWallet,
		},
		{
			name:        "Negative amount",
			tx:          NewTransaction{Amount: -1, Type: TransactionExpense, WalletID: cash},
			expectedErr: errs.ErrNegativeAmount,
		},
		{
			name:        "Unknown type",
			tx:          NewTransaction{Amount: 1, Type: "refund", WalletID: cash},
			expectedErr: errs.ErrInvalidTransactionType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tx.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestNewTransactionDeltas(t *testing.T) {
	cash := strPtr("cash")
	bank := strPtr("bank")

	t.Run("Expense decrements the wallet", func(t *testing.T) {
		tx := NewTransaction{Amount: 30, Type: TransactionExpense, WalletID: cash}
		assert.Equal(t, []WalletDelta{{WalletID: "cash", Delta: -30}}, tx.Deltas())
	})

	t.Run("Income increments the wallet", func(t *testing.T) {
		tx := NewTransaction{Amount: 30, Type: TransactionIncome, WalletID: cash}
		assert.Equal(t, []WalletDelta{{WalletID: "cash", Delta: 30}}, tx.Deltas())
	})

	t.Run("Transfer conserves the total", func(t *testing.T) {
		tx := NewTransaction{Amount: 50, Type: TransactionTransfer, WalletID: cash, TargetWalletID: bank}
		deltas := tx.Deltas()

		require.Len(t, deltas, 2)
		assert.Equal(t, WalletDelta{WalletID: "cash", Delta: -50}, deltas[0])
		assert.Equal(t, WalletDelta{WalletID: "bank", Delta: 50}, deltas[1])
		assert.Zero(t, deltas[0].Delta+deltas[1].Delta)
	})
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("expense"))
	assert.True(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType("Expense"))
	assert.False(t, IsValidTransactionType(""))
}
