package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
)

// Format is an export file format
type Format string

// Supported export formats
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// SheetName is the worksheet that holds exported transactions
const SheetName = "Transactions"

// Headers are the column titles of every export
var Headers = []string{"Date", "Type", "Category", "Wallet", "Target Wallet", "Amount", "Note"}

var columnWidths = []float64{12, 10, 18, 14, 14, 12, 36}

// ParseFormat validates a format name
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(format))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", format)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName builds a download name such as transactions_2024-05.xlsx. A zero
// month names the full history after the export date.
func (f Format) FileName(month time.Time, now time.Time) string {
	if month.IsZero() {
		return fmt.Sprintf("transactions_all_%s.%s", now.Format("20060102"), f)
	}
	return fmt.Sprintf("transactions_%s.%s", month.Format("2006-01"), f)
}

// Row is one exported transaction with ids resolved to names
type Row struct {
	Date         string
	Type         string
	Category     string
	Wallet       string
	TargetWallet string
	Amount       float64
	Note         string
}

func (r Row) strings() []string {
	return []string{r.Date, r.Type, r.Category, r.Wallet, r.TargetWallet, entity.FormatAmount(r.Amount), r.Note}
}

// TransactionExporter writes transactions as spreadsheets
type TransactionExporter struct {
	categories persistence.CategoryRepository
	wallets    persistence.WalletRepository
	logger     coreport.Logger
}

// NewTransactionExporter creates a new exporter
func NewTransactionExporter(
	categories persistence.CategoryRepository,
	wallets persistence.WalletRepository,
	logger coreport.Logger,
) *TransactionExporter {
	return &TransactionExporter{
		categories: categories,
		wallets:    wallets,
		logger:     logger,
	}
}

// Rows resolves category and wallet names for the given transactions
func (e *TransactionExporter) Rows(ctx context.Context, txns []entity.Transaction) ([]Row, error) {
	categories, err := e.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	wallets, err := e.wallets.List(ctx)
	if err != nil {
		return nil, err
	}
	walletNames := make(map[string]string, len(wallets))
	for _, w := range wallets {
		walletNames[w.ID] = w.Name
	}

	rows := make([]Row, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, Row{
			Date:         t.OccurredAt.Format(time.DateOnly),
			Type:         string(t.Type),
			Category:     lookup(categoryNames, t.CategoryID),
			Wallet:       lookup(walletNames, t.WalletID),
			TargetWallet: lookup(walletNames, t.TargetWalletID),
			Amount:       t.Amount,
			Note:         deref(t.Note),
		})
	}
	return rows, nil
}

// Write renders the transactions in the requested format
func (e *TransactionExporter) Write(ctx context.Context, w io.Writer, format Format, txns []entity.Transaction) error {
	rows, err := e.Rows(ctx, txns)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(w, rows)
	case FormatXLSX:
		err = WriteXLSX(w, rows)
	default:
		err = fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		e.logger.Error("Export failed", map[string]any{
			"error":  err.Error(),
			"format": string(format),
		})
		return err
	}

	e.logger.Info("Transactions exported", map[string]any{
		"format":     string(format),
		"rows":       len(rows),
		"request_id": coreport.RequestID(ctx),
	})
	return nil
}

// WriteCSV writes a header line followed by one line per row
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Headers); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write(r.strings()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes a single-sheet workbook with numeric amount cells
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}

	for idx, r := range rows {
		row := idx + 2
		values := []any{r.Date, r.Type, r.Category, r.Wallet, r.TargetWallet, r.Amount, r.Note}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if len(rows) > 0 {
		// 0.00
		amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
		if err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(6, len(rows)+1)
		if err := f.SetCellStyle(SheetName, "F2", last, amountStyle); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func lookup(names map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return *id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
