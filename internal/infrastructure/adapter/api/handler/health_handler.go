package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/database"
)

// HealthChecker reports database health
type HealthChecker interface {
	HealthCheck(ctx context.Context) (*database.HealthStatus, error)
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	checker HealthChecker
	version string
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	status, err := h.checker.HealthCheck(c.Request.Context())

	code := http.StatusOK
	if err != nil {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"version":  h.version,
		"database": status,
	})
}
