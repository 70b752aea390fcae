package dto

import (
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// CreateWalletRequest represents the API request for creating a wallet
type CreateWalletRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=cash bank"`
	Balance string `json:"balance"`
}

// PrimeWalletsRequest sets the opening balances of the cash and bank wallets
type PrimeWalletsRequest struct {
	Cash string `json:"cash" binding:"required"`
	Bank string `json:"bank" binding:"required"`
}

// WalletResponse represents a wallet and its balance
type WalletResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWalletResponse converts a wallet entity for the wire
func NewWalletResponse(w entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		Name:      w.Name,
		Type:      string(w.Type),
		Balance:   entity.FormatAmount(w.Balance),
		CreatedAt: w.CreatedAt,
	}
}

// NewWalletResponses converts a list of wallets
func NewWalletResponses(wallets []entity.Wallet) []WalletResponse {
	out := make([]WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, NewWalletResponse(w))
	}
	return out
}
