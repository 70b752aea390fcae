package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories persistence.CategoryRepository
	logger     coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categories persistence.CategoryRepository, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// List handles the GET /categories endpoint
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "List categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create handles the POST /categories endpoint. Categories created here are
// always custom; the defaults come from seeding.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), entity.NewCategory{
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		IsCustom: true,
	})
	if err != nil {
		respondError(c, h.logger, "Create category", err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
