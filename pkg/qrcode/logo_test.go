package qrcode

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
)

func TestLoadLogo(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniformLogo(32, 32, color.RGBA{B: 255, A: 255})))
	require.NoError(t, f.Close())

	img, err := LoadLogo(path)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestLoadLogoUndecodable(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"not an image": func() string {
			path := filepath.Join(dir, "logo.txt")
			require.NoError(t, os.WriteFile(path, []byte("definitely not pixels"), 0644))
			return path
		}(),
		"missing file": filepath.Join(dir, "missing.png"),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLogo(path)
			require.ErrorIs(t, err, errorz.UnsupportedLogo)
		})
	}
}
