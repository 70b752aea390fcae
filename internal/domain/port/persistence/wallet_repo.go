package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// WalletRepository defines methods to interact with wallet data
type WalletRepository interface {
	// List returns all wallets ordered by creation time ascending
	List(ctx context.Context) ([]entity.Wallet, error)

	// GetByID retrieves a wallet by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.Wallet, error)

	// GetByType returns the oldest wallet of the given type, or (nil, nil)
	// Used during onboarding to find the cash or bank wallet
	GetByType(ctx context.Context, walletType entity.WalletType) (*entity.Wallet, error)

	// Create inserts a wallet with a generated ID and returns the stored row
	//
	// Possible errors:
	// - ErrConstraintViolation: If a column constraint fails
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, wallet entity.NewWallet) (*entity.Wallet, error)

	// UpdateBalance applies a relative adjustment (balance = balance + delta)
	// and returns the updated row
	//
	// Possible errors:
	// - ErrWalletNotFound: If wallet doesn't exist
	UpdateBalance(ctx context.Context, id string, delta float64) (*entity.Wallet, error)

	// SetBalance overwrites the balance with an absolute value
	//
	// Possible errors:
	// - ErrWalletNotFound: If wallet doesn't exist
	SetBalance(ctx context.Context, id string, balance float64) (*entity.Wallet, error)
}
