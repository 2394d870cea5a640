package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "neatdog.json", map[string]any{
		"server_url":      "https://api.neatdog.example/api/v1",
		"request_timeout": "10s",
	})
	yamlPath := filepath.Join(dir, "neatdog.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("store_path: /var/lib/neatdog.db\nstore_secret: s3cret\nrequest_timeout: 0\n"), 0o600))

	t.Run("loads JSON", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		cfg := &Config{StorePath: "keep.db"}
		parseFile(cfg)

		assert.Equal(t, "https://api.neatdog.example/api/v1", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "keep.db", cfg.StorePath, "absent fields keep their value")
	})

	t.Run("loads YAML by extension", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", yamlPath}

		cfg := &Config{ServerURL: "keep", RequestTimeout: time.Minute}
		parseFile(cfg)

		assert.Equal(t, "/var/lib/neatdog.db", cfg.StorePath)
		assert.Equal(t, "s3cret", cfg.StoreSecret)
		assert.Equal(t, "keep", cfg.ServerURL)
		assert.Zero(t, cfg.RequestTimeout, "explicit zero overrides")
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerURL: "defaults", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults", cfg.ServerURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid duration in YAML → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("request_timeout: whenever\n"), 0o600))

		os.Args = []string{"testbin", "-c", bad}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
