package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// WalletType distinguishes cash from bank wallets
type WalletType string

// Wallet types
const (
	WalletCash WalletType = "cash"
	WalletBank WalletType = "bank"
)

// Wallet is a named money container with a running balance. The balance is
// mutated only by transaction application or an explicit balance set.
type Wallet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      WalletType `json:"type"`
	Balance   float64    `json:"balance"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewWallet holds the caller supplied fields of a wallet
type NewWallet struct {
	Name    string
	Type    WalletType
	Balance float64
}

// Validate checks the wallet input
func (w NewWallet) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return errs.ErrEmptyName
	}
	if !IsValidWalletType(string(w.Type)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidWalletType, w.Type)
	}
	return nil
}

// IsValidWalletType reports whether the wallet type is known
func IsValidWalletType(t string) bool {
	return t == string(WalletCash) || t == string(WalletBank)
}
