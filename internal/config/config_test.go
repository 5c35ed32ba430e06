package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carrental/bookingservice/internal/config"
)

// TestLoad_defaults verifies that every env var is optional and falls back
// to its default. With no DATABASE_URL and no REDIS_ADDR the server runs on
// the built-in catalog with no cache.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CATALOG_CACHE_TTL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/catalog")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "postgres://user:pass@db:5432/catalog", cfg.DatabaseURL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
}

// TestLoad_invalidCacheTTL verifies that an unparseable CATALOG_CACHE_TTL is
// reported as an error naming the variable.
func TestLoad_invalidCacheTTL(t *testing.T) {
	t.Setenv("CATALOG_CACHE_TTL", "five minutes")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "CATALOG_CACHE_TTL")
}
