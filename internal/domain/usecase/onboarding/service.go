package onboarding

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// Default names of the wallets created during onboarding
const (
	CashWalletName = "Cash"
	BankWalletName = "Bank"
)

// Service implements the first-run setup flow. Each operation writes
// through one unit of work, so a failure leaves nothing half applied.
type Service struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

var _ usecase.OnboardingUseCase = (*Service)(nil)

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(uow persistence.UnitOfWork, logger coreport.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// inTransaction runs fn inside a unit of work, committing on success and
// rolling back otherwise
func (s *Service) inTransaction(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback "+operation, map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

// PrimeWallets sets the opening balances of the cash and bank wallets,
// creating either wallet on first use. Running it again overwrites the
// balances rather than adding to them.
func (s *Service) PrimeWallets(ctx context.Context, cash string, bank string) ([]entity.Wallet, error) {
	cashBalance, err := entity.ParseSignedAmount(cash)
	if err != nil {
		return nil, fmt.Errorf("cash: %w", err)
	}
	bankBalance, err := entity.ParseSignedAmount(bank)
	if err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}

	wallets := make([]entity.Wallet, 0, 2)
	err = s.inTransaction(ctx, "wallet priming", func(txCtx context.Context) error {
		repo := s.uow.GetWalletRepository(txCtx)
		for _, w := range []struct {
			name    string
			kind    entity.WalletType
			balance float64
		}{
			{CashWalletName, entity.WalletCash, cashBalance},
			{BankWalletName, entity.WalletBank, bankBalance},
		} {
			wallet, err := primeWallet(txCtx, repo, w.name, w.kind, w.balance)
			if err != nil {
				return err
			}
			wallets = append(wallets, *wallet)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Wallets primed", map[string]any{
		"cash": entity.FormatAmount(cashBalance),
		"bank": entity.FormatAmount(bankBalance),
	})
	return wallets, nil
}

func primeWallet(ctx context.Context, wallets persistence.WalletRepository, name string, kind entity.WalletType, balance float64) (*entity.Wallet, error) {
	wallet, err := wallets.GetByType(ctx, kind)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet, err = wallets.Create(ctx, entity.NewWallet{Name: name, Type: kind})
		if err != nil {
			return nil, err
		}
	}
	return wallets.SetBalance(ctx, wallet.ID, balance)
}

// Complete stores the chosen preferences on the local user and marks
// onboarding as done
func (s *Service) Complete(ctx context.Context, currency string, locale string) (*entity.User, error) {
	if err := entity.ValidatePreferences(currency, locale); err != nil {
		return nil, err
	}

	var user *entity.User
	err := s.inTransaction(ctx, "onboarding", func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		first, err := users.GetFirst(txCtx)
		if err != nil {
			return err
		}
		if first == nil {
			return errs.ErrUserNotFound
		}

		if _, err := users.UpdatePreferences(txCtx, first.ID, entity.Currency(currency), entity.Locale(locale)); err != nil {
			return err
		}

		user, err = users.CompleteOnboarding(txCtx, first.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Onboarding completed", map[string]any{
		"user_id":  user.ID,
		"currency": currency,
		"locale":   locale,
	})
	return user, nil
}
