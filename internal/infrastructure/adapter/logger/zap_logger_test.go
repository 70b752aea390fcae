package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerLevel(t *testing.T) {
	l, err := NewZapLoggerWithOptions(Options{Level: core.LogLevelWarn})
	require.NoError(t, err)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
}

func TestZapLoggerWritesRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "ledger.log")

	l, err := NewZapLoggerWithOptions(Options{Production: true, Level: core.LogLevelInfo, File: file})
	require.NoError(t, err)

	l.Debug("hidden", nil)
	l.Info("wallet created", map[string]any{"wallet_id": "w1"})
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"wallet created"`)
	assert.Contains(t, string(data), `"wallet_id":"w1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewRotatingWriterRequiresPath(t *testing.T) {
	_, err := NewRotatingWriter("", 1, 1)
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Error("ignored", map[string]any{"k": "v"})
	assert.NoError(t, l.Flush())
}
