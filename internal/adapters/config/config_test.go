package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestGetDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{A: 255}, cfg.Foreground)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cfg.Background)
	assert.Equal(t, 10, cfg.ModuleSize)
	assert.Equal(t, 4, cfg.QuietZone)
	assert.Equal(t, 25, cfg.LogoScale)
	assert.Equal(t, 10, cfg.LogoPadding)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 260, cfg.PreviewSide)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.LogToFile)
	assert.Equal(t, "logs", cfg.LogsDir)
}

func TestGetFromFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := []byte(`render:
  fill: "#0d6efd"
  module-size: 12
output:
  dir: codes
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644))

	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0x0d, G: 0x6e, B: 0xfd, A: 255}, cfg.Foreground)
	assert.Equal(t, 12, cfg.ModuleSize)
	assert.Equal(t, "codes", cfg.OutputDir)

	// untouched keys keep their defaults
	assert.Equal(t, 4, cfg.QuietZone)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cfg.Background)
}

func TestGetEnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("QRSTUDIO_RENDER_MODULE_SIZE", "16")
	t.Setenv("QRSTUDIO_SETTINGS_DEBUG", "true")

	cfg, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.ModuleSize)
	assert.True(t, cfg.Debug)
}

func TestGetInvalidColor(t *testing.T) {
	chdirTemp(t)

	t.Setenv("QRSTUDIO_RENDER_FILL", "not-a-color")

	_, err := Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.fill")
}
