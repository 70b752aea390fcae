package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// OnboardingUseCase defines the first-run setup operations
type OnboardingUseCase interface {
	// PrimeWallets gets or creates the cash and bank wallets and sets their
	// starting balances
	PrimeWallets(ctx context.Context, cash string, bank string) ([]entity.Wallet, error)

	// Complete stores the chosen currency and locale and marks onboarding done
	Complete(ctx context.Context, currency string, locale string) (*entity.User, error)
}
