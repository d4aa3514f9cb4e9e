package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStorageConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  backend: postgres
  dsn_env: DATABASE_URL
  pool:
    max_open_conns: 25
    max_idle_conns: 10
    conn_max_lifetime: 1h
    conn_max_idle_time: 30m
pagination:
  default_limit: 20
  max_limit: 100
`)

	config, err := LoadStorageConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", config.Storage.Backend)
	assert.Equal(t, "DATABASE_URL", config.Storage.DSNEnv)
	assert.Equal(t, 25, config.Storage.Pool.MaxOpenConns)
	assert.Equal(t, 10, config.Storage.Pool.MaxIdleConns)
	assert.Equal(t, "1h", config.Storage.Pool.ConnMaxLifetime)
	assert.Equal(t, 20, config.Pagination.DefaultLimit)
	assert.Equal(t, 100, config.Pagination.MaxLimit)
}

func TestLoadStorageConfig_SQLiteBackend(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  backend: sqlite
  dsn_env: SQLITE_PATH
`)

	config, err := LoadStorageConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", config.Storage.Backend)
}

func TestLoadStorageConfig_MissingFile(t *testing.T) {
	_, err := LoadStorageConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadStorageConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "storage: [not: a: mapping")

	_, err := LoadStorageConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadStorageConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name: "missing backend",
			content: `
storage:
  dsn_env: DATABASE_URL
`,
			wantMsg: "storage backend is required",
		},
		{
			name: "unsupported backend",
			content: `
storage:
  backend: mysql
  dsn_env: DATABASE_URL
`,
			wantMsg: "unsupported storage backend",
		},
		{
			name: "missing dsn_env",
			content: `
storage:
  backend: postgres
`,
			wantMsg: "dsn_env is required",
		},
		{
			name: "negative pool size",
			content: `
storage:
  backend: postgres
  dsn_env: DATABASE_URL
  pool:
    max_open_conns: -1
`,
			wantMsg: "max_open_conns must not be negative",
		},
		{
			name: "default limit above max",
			content: `
storage:
  backend: postgres
  dsn_env: DATABASE_URL
pagination:
  default_limit: 200
  max_limit: 100
`,
			wantMsg: "default_limit must not exceed max_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)

			_, err := LoadStorageConfig(path)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
