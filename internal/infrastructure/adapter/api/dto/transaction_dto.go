package dto

import (
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// TransactionRequest represents the API request for recording a transaction.
// Amount is a decimal string such as "30" or "30.50".
type TransactionRequest struct {
	Amount         string     `json:"amount" binding:"required"`
	Type           string     `json:"type" binding:"required,oneof=income expense transfer"`
	CategoryID     *string    `json:"categoryId"`
	WalletID       *string    `json:"walletId"`
	TargetWalletID *string    `json:"targetWalletId"`
	Note           *string    `json:"note"`
	OccurredAt     *time.Time `json:"occurredAt"`
}

// TransactionResponse represents a recorded transaction
type TransactionResponse struct {
	ID             string    `json:"id"`
	Amount         string    `json:"amount"`
	Type           string    `json:"type"`
	CategoryID     *string   `json:"categoryId"`
	WalletID       *string   `json:"walletId"`
	TargetWalletID *string   `json:"targetWalletId"`
	Note           *string   `json:"note"`
	OccurredAt     time.Time `json:"occurredAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewTransactionResponse converts a transaction entity for the wire
func NewTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		Amount:         entity.FormatAmount(t.Amount),
		Type:           string(t.Type),
		CategoryID:     t.CategoryID,
		WalletID:       t.WalletID,
		TargetWalletID: t.TargetWalletID,
		Note:           t.Note,
		OccurredAt:     t.OccurredAt,
		CreatedAt:      t.CreatedAt,
	}
}

// NewTransactionResponses converts a list of transactions
func NewTransactionResponses(txns []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
