package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.PersistDebounce)
	assert.Equal(t, 150*time.Millisecond, cfg.PreviewDebounce)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.DBPath, "modcn")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/custom.db\npersist_debounce: 250ms\nlog_level: debug\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.PersistDebounce)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, 150*time.Millisecond, cfg.PreviewDebounce)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MODCN_LOG_LEVEL", "trace")
	t.Setenv("MODCN_PREVIEW_DEBOUNCE", "75ms")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, 75*time.Millisecond, cfg.PreviewDebounce)
}

func TestLoadClampsNonPositiveWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("persist_debounce: 0s\npreview_debounce: -5ms\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.PersistDebounce)
	assert.Equal(t, 150*time.Millisecond, cfg.PreviewDebounce)
}
