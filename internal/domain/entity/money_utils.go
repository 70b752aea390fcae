package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount parses a non-negative decimal string with at most two decimal
// places, e.g. "30", "30.5" or "30.50".
func ParseAmount(amount string) (float64, error) {
	d, err := parseDecimal(amount)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}
	return d.InexactFloat64(), nil
}

// ParseSignedAmount is ParseAmount without the sign restriction. It is used
// for absolute balances, which may be negative for overdrawn wallets.
func ParseSignedAmount(amount string) (float64, error) {
	d, err := parseDecimal(amount)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseDecimal(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if !d.Round(MaxDecimalPlaces).Equal(d) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two decimal places.
// 70 becomes "70.00" and -12.5 becomes "-12.50".
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(MaxDecimalPlaces)
}

// RoundAmount rounds a stored floating point amount to cents, removing
// binary representation noise such as 0.1+0.2.
func RoundAmount(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(MaxDecimalPlaces).InexactFloat64()
}

// ValidateAmount checks that an amount is finite and not negative
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.ErrInvalidAmount
	}
	if amount < 0 {
		return errs.ErrNegativeAmount
	}
	return nil
}
