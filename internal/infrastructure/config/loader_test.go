package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	original := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = original })
}

func TestLoadConfigFor(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		withConfigDir(t, nil)

		cfg, err := LoadConfigFor(Test)
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "EGP", cfg.Ledger.DefaultCurrency)
		assert.Equal(t, "ar-EG", cfg.Ledger.DefaultLocale)
		assert.Equal(t, IDSchemeULID, cfg.Ledger.IDScheme)
		assert.True(t, cfg.AllowsReset())
	})

	t.Run("Yaml file values", func(t *testing.T) {
		withConfigDir(t, map[string]string{
			"production.yaml": `
server:
  port: 9090
database:
  path: /var/lib/ledger/ledger.db
ledger:
  defaultCurrency: USD
  defaultLocale: en-US
  idScheme: uuidv7
`,
		})

		cfg, err := LoadConfigFor(Production)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "/var/lib/ledger/ledger.db", cfg.Database.Path)
		assert.Equal(t, "USD", cfg.Ledger.DefaultCurrency)
		assert.Equal(t, IDSchemeUUIDv7, cfg.Ledger.IDScheme)
		assert.False(t, cfg.AllowsReset())
	})

	t.Run("Environment overrides win", func(t *testing.T) {
		withConfigDir(t, map[string]string{
			"development.yaml": "database:\n  path: from-file.db\n",
		})
		t.Setenv("PL_DB_PATH", "from-env.db")
		t.Setenv("PL_SERVER_PORT", "7000")

		cfg, err := LoadConfigFor(Development)
		require.NoError(t, err)

		assert.Equal(t, "from-env.db", cfg.Database.Path)
		assert.Equal(t, 7000, cfg.Server.Port)
	})

	t.Run("Invalid id scheme", func(t *testing.T) {
		withConfigDir(t, nil)
		t.Setenv("PL_ID_SCHEME", "serial")

		_, err := LoadConfigFor(Test)
		assert.Error(t, err)
	})

	t.Run("Unknown environment", func(t *testing.T) {
		withConfigDir(t, nil)

		_, err := LoadConfigFor("staging")
		assert.Error(t, err)
	})

	t.Run("Postgres requires a host", func(t *testing.T) {
		withConfigDir(t, nil)
		t.Setenv("PL_DB_DRIVER", DriverPostgres)

		_, err := LoadConfigFor(Test)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
	})
}
