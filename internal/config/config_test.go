package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("CART_STORAGE", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiry)
	assert.NotEmpty(t, cfg.Auth.JWTSecret, "development falls back to a built-in secret")
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CART_STORAGE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/carts.db")
	t.Setenv("CART_TTL", "72h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/carts.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 72*time.Hour, cfg.Storage.CartTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown storage backend", func(t *testing.T) {
		t.Setenv("CART_STORAGE", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "CART_STORAGE")
	})

	t.Run("production requires a secret", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY", "tomorrow")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_EXPIRY")
	})
}
