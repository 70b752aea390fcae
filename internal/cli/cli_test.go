package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand(&out, BuildInfo{Version: "1.2.3", Commit: "abc", BuildTime: "now"})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useTempConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	original := config.ConfigPaths
	config.ConfigPaths = []string{filepath.Join(dir, "configs")}
	t.Cleanup(func() { config.ConfigPaths = original })

	t.Setenv("PL_DB_PATH", filepath.Join(dir, "ledger.db"))
	t.Setenv("PL_DB_LOG_LEVEL", "silent")
	t.Setenv("PL_LOGGER_LEVEL", "error")
	t.Setenv("PL_EXPORT_DIR", filepath.Join(dir, "exports"))
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "version=1.2.3 commit=abc build_time=now\n", out)

	out, err = runCommand(t, "version", "--json")
	require.NoError(t, err)
	var build BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &build))
	assert.Equal(t, "1.2.3", build.Version)
}

func TestMigrateAndSeedCommands(t *testing.T) {
	useTempConfig(t)

	out, err := runCommand(t, "--env", config.Test, "migrate")
	require.NoError(t, err)
	assert.NotEqual(t, "applied 0 migration(s)\n", out)

	out, err = runCommand(t, "--env", config.Test, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "applied 0 migration(s)\n", out)

	out, err = runCommand(t, "--env", config.Test, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "user_created=true")

	out, err = runCommand(t, "--env", config.Test, "seed")
	require.NoError(t, err)
	assert.Equal(t, "user_created=false categories_created=0\n", out)
}

func TestResetCommand(t *testing.T) {
	dir := useTempConfig(t)

	_, err := runCommand(t, "--env", config.Test, "seed")
	require.NoError(t, err)

	_, err = runCommand(t, "--env", config.Test, "reset")
	assert.Error(t, err)

	out, err := runCommand(t, "--env", config.Test, "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "database reset\n", out)

	_, statErr := os.Stat(filepath.Join(dir, "ledger.db"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBillsRollCommand(t *testing.T) {
	useTempConfig(t)

	out, err := runCommand(t, "--env", config.Test, "bills", "roll")
	require.NoError(t, err)
	assert.Equal(t, "checked=0 rolled=0\n", out)
}

func TestExportCommand(t *testing.T) {
	dir := useTempConfig(t)

	out, err := runCommand(t, "--env", config.Test, "export", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "exported 0 transaction(s)")

	matches, err := filepath.Glob(filepath.Join(dir, "exports", "transactions_all_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Date", records[0][0])

	_, err = runCommand(t, "--env", config.Test, "export", "--month", "May")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "--month"))
}
