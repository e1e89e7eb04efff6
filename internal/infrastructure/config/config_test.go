package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9090
  allowed_origins:
    - http://localhost:4000
storage:
  database_path: ${TEST_DB_PATH}
dashboard:
  top_expense_limit: 3
observability:
  logging:
    level: debug
    format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TEST_DB_PATH", "/tmp/books.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:4000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/tmp/books.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 3, cfg.Dashboard.TopExpenseLimit)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "parishbooks.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PARISHBOOKS_PORT", "7070")
	t.Setenv("PARISHBOOKS_DB_PATH", "env.db")
	t.Setenv("PARISHBOOKS_ALLOWED_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("PARISHBOOKS_LOG_LEVEL", "warn")

	cfg := LoadFromEnv()

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
}

func TestLoadFromEnv_BadIntFallsBack(t *testing.T) {
	t.Setenv("PARISHBOOKS_PORT", "not-a-port")
	cfg := LoadFromEnv()
	assert.Equal(t, 8080, cfg.Server.Port)
}
