package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "prizedraw:", cfg.KeyPrefix)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORAGE_TIMEOUT", "250ms")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 250*time.Millisecond, cfg.StorageTimeout)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.True(t, cfg.LogDevelopment)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEY_PREFIX=fromfile:\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	// make sure the file value is observable and restored afterwards
	t.Setenv("KEY_PREFIX", "")
	os.Unsetenv("KEY_PREFIX")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "fromfile:", cfg.KeyPrefix)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("STORAGE_TIMEOUT", "0s")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}
