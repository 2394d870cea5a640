package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDotenv(t *testing.T, content string) {
	t.Helper()
	orig := dotenvFile
	t.Cleanup(func() { dotenvFile = orig })

	dotenvFile = filepath.Join(t.TempDir(), ".env")
	if content != "" {
		require.NoError(t, os.WriteFile(dotenvFile, []byte(content), 0o600))
	}
}

func TestParseEnv_Overlay(t *testing.T) {
	useDotenv(t, "")
	t.Setenv("NEATDOG_SERVER_URL", "http://env:8000/api/v1")
	t.Setenv("NEATDOG_REQUEST_TIMEOUT", "20s")

	cfg := &Config{StorePath: "keep.db", LogLevel: "warn"}
	parseEnv(cfg)

	assert.Equal(t, "http://env:8000/api/v1", cfg.ServerURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "keep.db", cfg.StorePath, "unset variables leave fields alone")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	useDotenv(t, "NEATDOG_STORE_SECRET=from-dotenv\nNEATDOG_LOG_LEVEL=info\n")
	t.Setenv("NEATDOG_LOG_LEVEL", "debug")
	t.Cleanup(func() { _ = os.Unsetenv("NEATDOG_STORE_SECRET") })

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "from-dotenv", cfg.StoreSecret)
	assert.Equal(t, "debug", cfg.LogLevel, "real environment wins over .env")
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	useDotenv(t, "")
	t.Setenv("NEATDOG_REQUEST_TIMEOUT", "soonish")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
