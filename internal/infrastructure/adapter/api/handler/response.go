package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
)

// MonthLayout is the format of the month query parameter
const MonthLayout = "2006-01"

// StatusClientClosedRequest is reported when the client went away before
// the request finished
const StatusClientClosedRequest = 499

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConstraintError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrResetNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrDatabaseConnection), errors.Is(err, domainerr.ErrNotInitialized):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a domain error. Server errors are logged and their
// details hidden from the client.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusCode(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error(operation+" failed", map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": coreport.RequestID(c.Request.Context()),
		})
		message = http.StatusText(status)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: coreport.RequestID(c.Request.Context()),
	})
}

// respondBindError writes a malformed request error
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message:   "Invalid request format: " + err.Error(),
		RequestID: coreport.RequestID(c.Request.Context()),
	})
}

// parseMonth reads the optional month query parameter. An absent value
// yields the fallback.
func parseMonth(c *gin.Context, fallback time.Time) (time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return fallback, nil
	}

	month, err := time.ParseInLocation(MonthLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must look like %s", domainerr.ErrInvalidRequest, MonthLayout)
	}
	return month, nil
}
