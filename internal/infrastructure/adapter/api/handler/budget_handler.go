package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetUseCase usecase.BudgetUseCase
	budgets       persistence.BudgetRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(
	budgetUseCase usecase.BudgetUseCase,
	budgets persistence.BudgetRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BudgetHandler {
	return &BudgetHandler{
		budgetUseCase: budgetUseCase,
		budgets:       budgets,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// List handles the GET /budgets endpoint
func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.budgets.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "List budgets", err)
		return
	}

	out := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, dto.NewBudgetResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles the POST /budgets endpoint
func (h *BudgetHandler) Create(c *gin.Context) {
	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetUseCase.Create(c.Request.Context(), req.CategoryID, req.MonthlyLimit)
	if err != nil {
		respondError(c, h.logger, "Create budget", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBudgetResponse(*budget))
}

// UpdateLimit handles the PATCH /budgets/:id endpoint
func (h *BudgetHandler) UpdateLimit(c *gin.Context) {
	var req dto.BudgetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	limit, err := entity.ParseAmount(req.MonthlyLimit)
	if err != nil {
		respondError(c, h.logger, "Update budget", err)
		return
	}

	budget, err := h.budgets.UpdateLimit(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, h.logger, "Update budget", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(*budget))
}

// Status handles the GET /budgets/status endpoint. The month defaults to the
// current one.
func (h *BudgetHandler) Status(c *gin.Context) {
	month, err := parseMonth(c, h.timeProvider.Now())
	if err != nil {
		respondError(c, h.logger, "Budget status", err)
		return
	}

	statuses, err := h.budgetUseCase.Status(c.Request.Context(), month)
	if err != nil {
		respondError(c, h.logger, "Budget status", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetStatusResponses(statuses))
}
