package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, CacheDisabled, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 4, cfg.LoadConcurrency)
	assert.False(t, cfg.PreloadCatalog)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_PREFIX", "/api")
	t.Setenv("DATA_DIR", "/srv/wiki/data")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("PRELOAD_CATALOG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "/srv/wiki/data", cfg.DataDir)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.True(t, cfg.PreloadCatalog)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown cache backend", "CACHE_BACKEND", "memcached"},
		{"non numeric port", "PORT", "http"},
		{"prefix without slash", "API_PREFIX", "api"},
		{"zero concurrency", "LOAD_CONCURRENCY", "0"},
		{"unparseable duration", "CACHE_TTL", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("WIKI_TEST_STRING", "value")
	t.Setenv("WIKI_TEST_BOOL", "true")
	t.Setenv("WIKI_TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "value", GetEnv("WIKI_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WIKI_TEST_UNSET", "fallback"))
	assert.True(t, GetBoolEnv("WIKI_TEST_BOOL", false))
	assert.True(t, GetBoolEnv("WIKI_TEST_BAD_BOOL", true))
	assert.False(t, GetBoolEnv("WIKI_TEST_UNSET", false))
}
