package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_BACKEND", "DB_HOST", "DB_PORT", "DB_NAME", "REDIS_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendPostgres, cfg.Storage.Backend)
	require.Equal(t, "localhost", cfg.Storage.DB.Host)
	require.Equal(t, "5432", cfg.Storage.DB.Port)
	require.Equal(t, "calorelia", cfg.Storage.DB.DBName)
	require.Equal(t, "6379", cfg.Storage.Redis.Port)
}

func TestLoadStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "MEMORY")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Storage.Backend)

	t.Setenv("STORAGE_BACKEND", "etcd")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-123")
	t.Setenv("DB_NAME", "other")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token-123", cfg.TelegramToken)
	require.Equal(t, "other", cfg.Storage.DB.DBName)
	require.Equal(t, "text", cfg.Logger.Format)
}
