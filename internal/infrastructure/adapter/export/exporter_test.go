package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mcore "github.com/amirhossein-jamali/pocket-ledger/mocks/port/core"
	mpers "github.com/amirhossein-jamali/pocket-ledger/mocks/port/persistence"
)

func strPtr(s string) *string { return &s }

func sampleTransactions() []entity.Transaction {
	day := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	return []entity.Transaction{
		{ID: "t1", Amount: 30, Type: entity.TransactionExpense, CategoryID: strPtr("c-food"), WalletID: strPtr("w-cash"), Note: strPtr("lunch, with team"), OccurredAt: day},
		{ID: "t2", Amount: 200.5, Type: entity.TransactionTransfer, WalletID: strPtr("w-bank"), TargetWalletID: strPtr("w-cash"), OccurredAt: day},
		{ID: "t3", Amount: 12, Type: entity.TransactionExpense, CategoryID: strPtr("c-gone"), WalletID: strPtr("w-cash"), OccurredAt: day},
	}
}

func newExporter(t *testing.T) *TransactionExporter {
	categories := mpers.NewMockCategoryRepository(t)
	wallets := mpers.NewMockWalletRepository(t)
	logger := mcore.NewMockLogger(t)

	categories.On("List", mock.Anything).Return([]entity.Category{{ID: "c-food", Name: "food"}}, nil)
	wallets.On("List", mock.Anything).Return([]entity.Wallet{
		{ID: "w-cash", Name: "Cash"},
		{ID: "w-bank", Name: "Bank"},
	}, nil)
	logger.AllowAll()

	return NewTransactionExporter(categories, wallets, logger)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "transactions_2024-05.csv", FormatCSV.FileName(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "transactions_all_20240602.xlsx", FormatXLSX.FileName(time.Time{}, now))
}

func TestRows(t *testing.T) {
	exporter := newExporter(t)

	rows, err := exporter.Rows(context.Background(), sampleTransactions())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Date: "2024-05-03", Type: "expense", Category: "food", Wallet: "Cash", Amount: 30, Note: "lunch, with team"}, rows[0])
	assert.Equal(t, "Bank", rows[1].Wallet)
	assert.Equal(t, "Cash", rows[1].TargetWallet)
	assert.Empty(t, rows[1].Category)
	assert.Equal(t, "c-gone", rows[2].Category)
}

func TestWriteCSV(t *testing.T) {
	exporter := newExporter(t)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(context.Background(), &buf, FormatCSV, sampleTransactions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, Headers, records[0])
	assert.Equal(t, []string{"2024-05-03", "expense", "food", "Cash", "", "30.00", "lunch, with team"}, records[1])
	assert.Equal(t, "200.50", records[2][5])
}

func TestWriteXLSX(t *testing.T) {
	exporter := newExporter(t)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(context.Background(), &buf, FormatXLSX, sampleTransactions()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	header, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	category, err := f.GetCellValue(SheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "food", category)

	amount, err := f.GetCellValue(SheetName, "F3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "200.5", amount)

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Headers, rows[0])
}
