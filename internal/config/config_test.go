package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers restore on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

var configKeys = []string{
	"APP_PORT", "DB_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"SQLITE_PATH", "JWT_SECRET", "REDIS_ADDR", "REDIS_PASS", "REDIS_DB", "CACHE_TTL",
	"CODE_MAX_ATTEMPTS", "IS_PROD", "LOG_LEVEL",
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t, configKeys...)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "bungeoppang.db", cfg.SQLitePath)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.Equal(t, 256, cfg.CodeMaxAttempts)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "stands")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "app:secret@tcp(db:3307)/stands?charset=utf8mb4&parseTime=true", cfg.MySQLDSN())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
}

func TestLoadConfigRejectsBadSettings(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("DB_DRIVER", "postgres")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CODE_MAX_ATTEMPTS", "0")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("CODE_MAX_ATTEMPTS", "10")
	t.Setenv("IS_PROD", "true")
	t.Setenv("JWT_SECRET", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}
