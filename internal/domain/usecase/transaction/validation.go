package transaction

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// TransactionValidator turns raw transaction requests into validated domain input
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// Build validates every field of the request and returns the
// corresponding NewTransaction
func (v *TransactionValidator) Build(req usecase.TransactionRequest) (entity.NewTransaction, error) {
	txType, err := v.validateType(req.Type)
	if err != nil {
		return entity.NewTransaction{}, err
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return entity.NewTransaction{}, err
	}

	newTx := entity.NewTransaction{
		Amount:         amount,
		Type:           txType,
		CategoryID:     normalize(req.CategoryID),
		WalletID:       normalize(req.WalletID),
		TargetWalletID: normalize(req.TargetWalletID),
		Note:           normalize(req.Note),
		OccurredAt:     req.OccurredAt,
	}

	// Transfers carry no category
	if txType == entity.TransactionTransfer {
		newTx.CategoryID = nil
	}

	if err := newTx.Validate(); err != nil {
		return entity.NewTransaction{}, err
	}
	return newTx, nil
}

func (v *TransactionValidator) validateType(txType string) (entity.TransactionType, error) {
	txType = strings.ToLower(strings.TrimSpace(txType))
	if txType == "" {
		return "", errs.ErrInvalidTransactionType
	}
	if !entity.IsValidTransactionType(txType) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	return entity.TransactionType(txType), nil
}

// normalize maps blank optional strings to nil
func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
