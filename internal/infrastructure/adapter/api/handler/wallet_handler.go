package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	wallets      persistence.WalletRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	wallets persistence.WalletRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		wallets:      wallets,
		transactions: transactions,
		logger:       logger,
	}
}

// List handles the GET /wallets endpoint
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.wallets.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "List wallets", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponses(wallets))
}

// Create handles the POST /wallets endpoint
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	balance := 0.0
	if req.Balance != "" {
		parsed, err := entity.ParseSignedAmount(req.Balance)
		if err != nil {
			respondError(c, h.logger, "Create wallet", err)
			return
		}
		balance = parsed
	}

	wallet, err := h.wallets.Create(c.Request.Context(), entity.NewWallet{
		Name:    req.Name,
		Type:    entity.WalletType(req.Type),
		Balance: balance,
	})
	if err != nil {
		respondError(c, h.logger, "Create wallet", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewWalletResponse(*wallet))
}

// Get handles the GET /wallets/:id endpoint
func (h *WalletHandler) Get(c *gin.Context) {
	id := c.Param("id")

	wallet, err := h.wallets.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Get wallet", err)
		return
	}
	if wallet == nil {
		respondError(c, h.logger, "Get wallet", fmt.Errorf("%w: %s", domainerr.ErrWalletNotFound, id))
		return
	}

	c.JSON(http.StatusOK, dto.NewWalletResponse(*wallet))
}

// Transactions handles the GET /wallets/:id/transactions endpoint. Transfers
// show up on both of their wallets.
func (h *WalletHandler) Transactions(c *gin.Context) {
	txns, err := h.transactions.ListByWallet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "List wallet transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}
