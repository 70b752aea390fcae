package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles the local user and the onboarding flow
type UserHandler struct {
	users      persistence.UserRepository
	onboarding usecase.OnboardingUseCase
	logger     coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	users persistence.UserRepository,
	onboarding usecase.OnboardingUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		users:      users,
		onboarding: onboarding,
		logger:     logger,
	}
}

// Get handles the GET /user endpoint
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetFirst(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Get user", err)
		return
	}
	if user == nil {
		respondError(c, h.logger, "Get user", domainerr.ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// CompleteOnboarding handles the PUT /user/preferences endpoint
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.onboarding.Complete(c.Request.Context(), req.Currency, req.Locale)
	if err != nil {
		respondError(c, h.logger, "Complete onboarding", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// PrimeWallets handles the POST /user/wallets endpoint
func (h *UserHandler) PrimeWallets(c *gin.Context) {
	var req dto.PrimeWalletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	wallets, err := h.onboarding.PrimeWallets(c.Request.Context(), req.Cash, req.Bank)
	if err != nil {
		respondError(c, h.logger, "Prime wallets", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWalletResponses(wallets))
}
