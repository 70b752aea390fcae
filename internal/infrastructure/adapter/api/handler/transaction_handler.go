package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	transactions       persistence.TransactionRepository
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		transactions:       transactions,
		logger:             logger,
	}
}

// Create handles the POST /transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionUseCase.Create(c.Request.Context(), usecase.TransactionRequest{
		Amount:         req.Amount,
		Type:           req.Type,
		CategoryID:     req.CategoryID,
		WalletID:       req.WalletID,
		TargetWalletID: req.TargetWalletID,
		Note:           req.Note,
		OccurredAt:     req.OccurredAt,
	})
	if err != nil {
		respondError(c, h.logger, "Create transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(*txn))
}

// List handles the GET /transactions endpoint. The optional month query
// parameter (YYYY-MM) limits the result to one calendar month.
func (h *TransactionHandler) List(c *gin.Context) {
	month, err := parseMonth(c, time.Time{})
	if err != nil {
		respondError(c, h.logger, "List transactions", err)
		return
	}

	txns, err := h.transactionUseCase.List(c.Request.Context(), month)
	if err != nil {
		respondError(c, h.logger, "List transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}

// Get handles the GET /transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	id := c.Param("id")

	txn, err := h.transactions.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Get transaction", err)
		return
	}
	if txn == nil {
		respondError(c, h.logger, "Get transaction", fmt.Errorf("%w: transaction %s", domainerr.ErrNotFound, id))
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(*txn))
}
