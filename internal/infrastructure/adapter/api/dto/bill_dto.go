package dto

import (
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// BillRequest represents the API request for creating a bill.
// NextDueDate is a calendar date in YYYY-MM-DD form.
type BillRequest struct {
	Name        string  `json:"name" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Frequency   string  `json:"frequency" binding:"required,oneof=monthly quarterly yearly"`
	CategoryID  *string `json:"categoryId"`
	WalletID    *string `json:"walletId"`
	NextDueDate string  `json:"nextDueDate" binding:"required"`
}

// PayBillRequest represents the API request for paying a bill.
// Omitted fields fall back to the bill's own amount and wallet.
type PayBillRequest struct {
	Amount   *string    `json:"amount"`
	WalletID *string    `json:"walletId"`
	Status   string     `json:"status" binding:"omitempty,oneof=cleared pending"`
	PaidAt   *time.Time `json:"paidAt"`
}

// BillResponse represents a bill
type BillResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Frequency   string  `json:"frequency"`
	CategoryID  *string `json:"categoryId"`
	WalletID    *string `json:"walletId"`
	NextDueDate string  `json:"nextDueDate"`
	Active      bool    `json:"active"`
	Paid        bool    `json:"paid"`
}

// BillPaymentResponse represents a recorded bill payment
type BillPaymentResponse struct {
	ID        string    `json:"id"`
	BillID    string    `json:"billId"`
	Amount    string    `json:"amount"`
	WalletID  *string   `json:"walletId"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paidAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// PayBillResponse is the outcome of paying a bill
type PayBillResponse struct {
	Bill        BillResponse         `json:"bill"`
	Payment     BillPaymentResponse  `json:"payment"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// RollForwardResponse lists the bills whose due date moved
type RollForwardResponse struct {
	Checked int            `json:"checked"`
	Rolled  []BillResponse `json:"rolled"`
}

// NewBillResponse converts a bill entity for the wire
func NewBillResponse(b entity.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		Name:        b.Name,
		Amount:      entity.FormatAmount(b.Amount),
		Frequency:   string(b.Frequency),
		CategoryID:  b.CategoryID,
		WalletID:    b.WalletID,
		NextDueDate: b.NextDueDate.Format(time.DateOnly),
		Active:      b.Active,
		Paid:        b.Paid,
	}
}

// NewBillResponses converts a list of bills
func NewBillResponses(bills []entity.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, NewBillResponse(b))
	}
	return out
}

// NewBillPaymentResponse converts a bill payment entity for the wire
func NewBillPaymentResponse(p entity.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		ID:        p.ID,
		BillID:    p.BillID,
		Amount:    entity.FormatAmount(p.Amount),
		WalletID:  p.WalletID,
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
	}
}

// NewPayBillResponse converts a payment result for the wire
func NewPayBillResponse(r *usecase.PayBillResult) PayBillResponse {
	resp := PayBillResponse{
		Bill:    NewBillResponse(*r.Bill),
		Payment: NewBillPaymentResponse(*r.Payment),
	}
	if r.Transaction != nil {
		t := NewTransactionResponse(*r.Transaction)
		resp.Transaction = &t
	}
	return resp
}
