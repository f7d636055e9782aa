package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.Picker.SpanAllScreens)
	assert.False(t, cfg.Picker.AllowEmptySelection)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
picker:
  span_all_screens: true
  max_visible_rows: 40
model:
  path: /tmp/project.db
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.True(t, cfg.Picker.SpanAllScreens)
	assert.Equal(t, 40, cfg.Picker.MaxVisibleRows)
	assert.Equal(t, "/tmp/project.db", cfg.ModelPath())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker: ["), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestModelPathDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join(DataDir(), "model.db"), cfg.ModelPath())
}

func TestSlogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}
