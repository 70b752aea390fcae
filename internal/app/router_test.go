package app_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

func call(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a := newTestApp(t, testConfig(t, config.Test))
	router, err := a.Router(context.Background(), "test")
	require.NoError(t, err)

	w := call(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = call(t, router, http.MethodPost, "/user/wallets", map[string]any{"cash": "100", "bank": "1000"})
	require.Equal(t, http.StatusOK, w.Code)
	var wallets []dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallets))
	require.Len(t, wallets, 2)
	cashID := wallets[0].ID

	w = call(t, router, http.MethodPost, "/transactions", map[string]any{
		"amount":     "30.50",
		"type":       "expense",
		"walletId":   cashID,
		"occurredAt": testNow,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(t, router, http.MethodGet, "/wallets/"+cashID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cash dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cash))
	assert.Equal(t, "69.50", cash.Balance)

	w = call(t, router, http.MethodPost, "/transactions", map[string]any{
		"amount":   "1",
		"type":     "expense",
		"walletId": "no-such-wallet",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, router, http.MethodGet, "/reports/monthly?month=2024-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var overview dto.MonthlyOverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, "30.50", overview.TotalExpenses)
	assert.Equal(t, "1069.50", overview.TotalFunds)

	w = call(t, router, http.MethodGet, "/export/transactions?format=csv&month=2024-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-05.csv")
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
