package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// Recovery turns a panic inside a handler into a 500 response and an error log entry
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"panic":      recovered,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": coreport.RequestID(c.Request.Context()),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message:   "Internal server error",
					RequestID: coreport.RequestID(c.Request.Context()),
				})
			}
		}()

		c.Next()
	}
}
