package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePreferences(t *testing.T) {
	t.Run("Defaults are valid", func(t *testing.T) {
		require.NoError(t, ValidatePreferences(string(DefaultCurrency), string(DefaultLocale)))
	})

	t.Run("Every supported currency", func(t *testing.T) {
		for _, c := range []string{"EGP", "USD", "EUR", "SAR", "AED"} {
			t.Run(c, func(t *testing.T) {
				assert.NoError(t, ValidatePreferences(c, "en-US"))
			})
		}
	})

	t.Run("Unknown currency", func(t *testing.T) {
		err := ValidatePreferences("GBP", "en-US")
		assert.ErrorIs(t, err, errs.ErrInvalidCurrency)
	})

	t.Run("Unknown locale", func(t *testing.T) {
		err := ValidatePreferences("USD", "fr-FR")
		assert.ErrorIs(t, err, errs.ErrInvalidLocale)
	})
}

func TestNewWalletValidate(t *testing.T) {
	assert.NoError(t, NewWallet{Name: "Cash", Type: WalletCash, Balance: 100}.Validate())
	assert.NoError(t, NewWallet{Name: "Bank", Type: WalletBank, Balance: -20}.Validate())
	assert.ErrorIs(t, NewWallet{Name: "  ", Type: WalletCash}.Validate(), errs.ErrEmptyName)
	assert.ErrorIs(t, NewWallet{Name: "Card", Type: "credit"}.Validate(), errs.ErrInvalidWalletType)
}

func TestNewCategoryValidate(t *testing.T) {
	assert.NoError(t, NewCategory{Name: "pets", IsCustom: true}.Validate())
	assert.ErrorIs(t, NewCategory{Name: ""}.Validate(), errs.ErrEmptyName)
}

func TestDefaultCategoryNames(t *testing.T) {
	seen := make(map[string]bool, len(DefaultCategoryNames))
	for _, name := range DefaultCategoryNames {
		assert.False(t, seen[name], "duplicate default category %q", name)
		seen[name] = true
	}
	assert.Len(t, DefaultCategoryNames, 14)
	assert.True(t, seen["rent"])
	assert.True(t, seen["groceries"])
}

func TestBudget(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, NewBudget{CategoryID: "c1", MonthlyLimit: 500}.Validate())
		assert.ErrorIs(t, NewBudget{CategoryID: "c1", MonthlyLimit: 0}.Validate(), errs.ErrInvalidLimit)
		assert.ErrorIs(t, NewBudget{CategoryID: "c1", MonthlyLimit: -10}.Validate(), errs.ErrInvalidLimit)
		assert.ErrorIs(t, NewBudget{MonthlyLimit: 10}.Validate(), errs.ErrInvalidRequest)
	})

	t.Run("Status under limit", func(t *testing.T) {
		b := Budget{ID: "b1", CategoryID: "c1", MonthlyLimit: 500, CreatedAt: time.Now()}
		status := NewBudgetStatus(b, 125)

		assert.Equal(t, 125.0, status.Spent)
		assert.Equal(t, 375.0, status.Remaining)
		assert.Equal(t, 25.0, status.Percent)
		assert.False(t, status.Exceeded)
	})

	t.Run("Status over limit", func(t *testing.T) {
		b := Budget{ID: "b1", CategoryID: "c1", MonthlyLimit: 200}
		status := NewBudgetStatus(b, 250.5)

		assert.Equal(t, -50.5, status.Remaining)
		assert.Equal(t, 125.25, status.Percent)
		assert.True(t, status.Exceeded)
	})
}
