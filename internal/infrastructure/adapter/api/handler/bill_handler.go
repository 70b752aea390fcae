package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billUseCase  usecase.BillUseCase
	bills        persistence.BillRepository
	payments     persistence.BillPaymentRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBillHandler creates a new bill handler instance
func NewBillHandler(
	billUseCase usecase.BillUseCase,
	bills persistence.BillRepository,
	payments persistence.BillPaymentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BillHandler {
	return &BillHandler{
		billUseCase:  billUseCase,
		bills:        bills,
		payments:     payments,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List handles the GET /bills endpoint. Pass active=true for active bills only.
func (h *BillHandler) List(c *gin.Context) {
	var (
		bills []entity.Bill
		err   error
	)
	if c.Query("active") == "true" {
		bills, err = h.bills.ListActive(c.Request.Context())
	} else {
		bills, err = h.bills.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.logger, "List bills", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBillResponses(bills))
}

// Create handles the POST /bills endpoint
func (h *BillHandler) Create(c *gin.Context) {
	var req dto.BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "Create bill", err)
		return
	}

	due, err := time.ParseInLocation(time.DateOnly, req.NextDueDate, time.UTC)
	if err != nil {
		respondError(c, h.logger, "Create bill", fmt.Errorf("%w: nextDueDate must look like %s", domainerr.ErrInvalidRequest, time.DateOnly))
		return
	}

	bill, err := h.bills.Create(c.Request.Context(), entity.NewBill{
		Name:        req.Name,
		Amount:      amount,
		Frequency:   entity.Frequency(req.Frequency),
		CategoryID:  req.CategoryID,
		WalletID:    req.WalletID,
		NextDueDate: due,
	})
	if err != nil {
		respondError(c, h.logger, "Create bill", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBillResponse(*bill))
}

// Pay handles the POST /bills/:id/pay endpoint
func (h *BillHandler) Pay(c *gin.Context) {
	var req dto.PayBillRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	result, err := h.billUseCase.Pay(c.Request.Context(), usecase.PayBillRequest{
		BillID:   c.Param("id"),
		Amount:   req.Amount,
		WalletID: req.WalletID,
		Status:   req.Status,
		PaidAt:   req.PaidAt,
	})
	if err != nil {
		respondError(c, h.logger, "Pay bill", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPayBillResponse(result))
}

// Payments handles the GET /bills/:id/payments endpoint
func (h *BillHandler) Payments(c *gin.Context) {
	payments, err := h.payments.ListByBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "List bill payments", err)
		return
	}

	out := make([]dto.BillPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.NewBillPaymentResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// RollForward handles the POST /bills/roll-forward endpoint
func (h *BillHandler) RollForward(c *gin.Context) {
	result, err := h.billUseCase.RollForward(c.Request.Context(), h.timeProvider.Now())
	if err != nil {
		respondError(c, h.logger, "Roll bills forward", err)
		return
	}

	c.JSON(http.StatusOK, dto.RollForwardResponse{
		Checked: result.Checked,
		Rolled:  dto.NewBillResponses(result.Rolled),
	})
}
