package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func walletToEntity(m *model.Wallet) entity.Wallet {
	return entity.Wallet{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.WalletType(m.Type),
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (r *WalletRepository) handleDatabaseError(operation string, err error, walletID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "wallet", err, map[string]any{
		"wallet_id": walletID,
	})
}

// List returns all wallets ordered by creation time ascending
func (r *WalletRepository) List(ctx context.Context) ([]entity.Wallet, error) {
	var models []model.Wallet
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing wallets", err, "")
	}

	wallets := make([]entity.Wallet, 0, len(models))
	for i := range models {
		wallets = append(wallets, walletToEntity(&models[i]))
	}
	return wallets, nil
}

// GetByID retrieves a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	wallet := walletToEntity(&walletModel)
	return &wallet, nil
}

// GetByType returns the oldest wallet of the given type
func (r *WalletRepository) GetByType(ctx context.Context, walletType entity.WalletType) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Where("type = ?", string(walletType)).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by type", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	wallet := walletToEntity(&walletModel)
	return &wallet, nil
}

// Create inserts a wallet with a generated ID and returns the stored row
func (r *WalletRepository) Create(ctx context.Context, wallet entity.NewWallet) (*entity.Wallet, error) {
	if err := wallet.Validate(); err != nil {
		return nil, err
	}

	walletModel := model.Wallet{
		ID:        r.idGenerator.NewID(),
		Name:      wallet.Name,
		Type:      string(wallet.Type),
		Balance:   wallet.Balance,
		CreatedAt: r.timeProvider.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&walletModel).Error; err != nil {
		return nil, r.handleDatabaseError("creating wallet", err, walletModel.ID)
	}

	created, err := r.GetByID(ctx, walletModel.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}

	r.logger.Info("Wallet created successfully", map[string]any{
		"wallet_id": created.ID,
		"type":      created.Type,
		"balance":   entity.FormatAmount(created.Balance),
	})
	return created, nil
}

// UpdateBalance applies a relative adjustment to the balance
func (r *WalletRepository) UpdateBalance(ctx context.Context, id string, delta float64) (*entity.Wallet, error) {
	if err := applyWalletDelta(r.db.WithContext(ctx), id, delta); err != nil {
		if errors.Is(err, errs.ErrWalletNotFound) {
			r.logger.Warn("Wallet not found during balance update", map[string]any{"wallet_id": id})
			return nil, err
		}
		return nil, r.handleDatabaseError("updating wallet balance", err, id)
	}
	return r.readBack(ctx, id)
}

// SetBalance overwrites the balance with an absolute value
func (r *WalletRepository) SetBalance(ctx context.Context, id string, balance float64) (*entity.Wallet, error) {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", id).
		Update("balance", balance)
	if result.Error != nil {
		return nil, r.handleDatabaseError("setting wallet balance", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet not found during balance set", map[string]any{"wallet_id": id})
		return nil, errs.ErrWalletNotFound
	}
	return r.readBack(ctx, id)
}

func (r *WalletRepository) readBack(ctx context.Context, id string) (*entity.Wallet, error) {
	wallet, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, errs.ErrWalletNotFound
	}
	return wallet, nil
}

// applyWalletDelta runs balance = balance + delta. The caller's db decides
// whether this joins an open transaction.
func applyWalletDelta(db *gorm.DB, id string, delta float64) error {
	result := db.Model(&model.Wallet{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}
	return nil
}
