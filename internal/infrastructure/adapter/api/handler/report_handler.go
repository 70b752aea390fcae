package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/export"
)

// ReportHandler serves read-only reports and exports
type ReportHandler struct {
	reportUseCase      usecase.ReportUseCase
	transactionUseCase usecase.TransactionUseCase
	exporter           *export.TransactionExporter
	defaultFormat      export.Format
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(
	reportUseCase usecase.ReportUseCase,
	transactionUseCase usecase.TransactionUseCase,
	exporter *export.TransactionExporter,
	defaultFormat export.Format,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ReportHandler {
	return &ReportHandler{
		reportUseCase:      reportUseCase,
		transactionUseCase: transactionUseCase,
		exporter:           exporter,
		defaultFormat:      defaultFormat,
		timeProvider:       timeProvider,
		logger:             logger,
	}
}

// Monthly handles the GET /reports/monthly endpoint
func (h *ReportHandler) Monthly(c *gin.Context) {
	month, err := parseMonth(c, h.timeProvider.Now())
	if err != nil {
		respondError(c, h.logger, "Monthly report", err)
		return
	}

	overview, err := h.reportUseCase.MonthlyOverview(c.Request.Context(), month)
	if err != nil {
		respondError(c, h.logger, "Monthly report", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMonthlyOverviewResponse(overview))
}

// ExportTransactions handles the GET /export/transactions endpoint. Without
// a month query parameter the whole history is exported.
func (h *ReportHandler) ExportTransactions(c *gin.Context) {
	format := h.defaultFormat
	if raw := c.Query("format"); raw != "" {
		parsed, err := export.ParseFormat(raw)
		if err != nil {
			respondBindError(c, err)
			return
		}
		format = parsed
	}

	month, err := parseMonth(c, time.Time{})
	if err != nil {
		respondError(c, h.logger, "Export transactions", err)
		return
	}

	txns, err := h.transactionUseCase.List(c.Request.Context(), month)
	if err != nil {
		respondError(c, h.logger, "Export transactions", err)
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", "attachment; filename=\""+format.FileName(month, h.timeProvider.Now())+"\"")
	c.Status(http.StatusOK)

	if err := h.exporter.Write(c.Request.Context(), c.Writer, format, txns); err != nil {
		_ = c.Error(err)
	}
}
