package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	StorePath string `env:"TEST_CFG_STORE_PATH" envDefault:"cart.json"`
	LogLevel  string `env:"TEST_CFG_LOG_LEVEL" envDefault:"info"`
	RedisDB   int    `env:"TEST_CFG_REDIS_DB" envDefault:"0"`
	Debug     bool   `env:"TEST_CFG_DEBUG" envDefault:"false"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "cart.json", cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("TEST_CFG_STORE_PATH", "/tmp/state.json")
	t.Setenv("TEST_CFG_LOG_LEVEL", "debug")
	t.Setenv("TEST_CFG_REDIS_DB", "3")
	t.Setenv("TEST_CFG_DEBUG", "true")

	var cfg testConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/state.json", cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidType(t *testing.T) {
	t.Setenv("TEST_CFG_REDIS_DB", "not-a-number")

	var cfg testConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadWithDotenv_FilePresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_CFG_LOG_LEVEL=warn\n"), 0o600))

	// godotenv must not override variables already set in the environment.
	t.Setenv("TEST_CFG_STORE_PATH", "/explicit/cart.json")

	var cfg testConfig
	err := LoadWithDotenv(&cfg, path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/explicit/cart.json", cfg.StorePath)
}

func TestLoadWithDotenv_FileMissing(t *testing.T) {
	var cfg testConfig
	err := LoadWithDotenv(&cfg, filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, "cart.json", cfg.StorePath)
}
