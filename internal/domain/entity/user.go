package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// Currency is the display currency chosen by the local user
type Currency string

// Supported currencies
const (
	CurrencyEGP Currency = "EGP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencySAR Currency = "SAR"
	CurrencyAED Currency = "AED"
)

// Locale is the UI locale chosen by the local user
type Locale string

// Supported locales
const (
	LocaleArEG Locale = "ar-EG"
	LocaleEnUS Locale = "en-US"
)

// Defaults applied to the seeded user
const (
	DefaultCurrency = CurrencyEGP
	DefaultLocale   = LocaleArEG
)

// User is the single local owner of the data. Only the first row is used.
type User struct {
	ID                  string    `json:"id"`
	CreatedAt           time.Time `json:"createdAt"`
	Currency            Currency  `json:"currency"`
	Locale              Locale    `json:"locale"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
}

// IsValidCurrency reports whether the currency is supported
func IsValidCurrency(c string) bool {
	switch Currency(c) {
	case CurrencyEGP, CurrencyUSD, CurrencyEUR, CurrencySAR, CurrencyAED:
		return true
	}
	return false
}

// IsValidLocale reports whether the locale is supported
func IsValidLocale(l string) bool {
	switch Locale(l) {
	case LocaleArEG, LocaleEnUS:
		return true
	}
	return false
}

// ValidatePreferences checks a currency and locale pair
func ValidatePreferences(currency, locale string) error {
	if !IsValidCurrency(currency) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidCurrency, currency)
	}
	if !IsValidLocale(locale) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidLocale, locale)
	}
	return nil
}
