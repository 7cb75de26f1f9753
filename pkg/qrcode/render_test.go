package qrcode

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

var (
	testBlack = color.RGBA{A: 255}
	testWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := Encode("https://example.com", entity.LevelHigh)
	require.NoError(t, err)
	return m
}

func TestRenderDimensions(t *testing.T) {
	tests := map[string]struct {
		moduleSize int
		quietZone  int
		wantBorder int
	}{
		"standard border":       {moduleSize: 10, quietZone: 4, wantBorder: 4},
		"wide border":           {moduleSize: 8, quietZone: 6, wantBorder: 6},
		"narrow border clamped": {moduleSize: 10, quietZone: 1, wantBorder: 4},
		"zero border clamped":   {moduleSize: 5, quietZone: 0, wantBorder: 4},
		"single pixel modules":  {moduleSize: 1, quietZone: 4, wantBorder: 4},
	}

	m := testMatrix(t)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img, err := Render(m, entity.RenderOptions{
				Foreground: testBlack,
				Background: testWhite,
				ModuleSize: tt.moduleSize,
				QuietZone:  tt.quietZone,
			})
			require.NoError(t, err)

			want := (m.Side() + 2*tt.wantBorder) * tt.moduleSize
			assert.Equal(t, want, img.Bounds().Dx())
			assert.Equal(t, want, img.Bounds().Dy())
		})
	}
}

func TestRenderInvalidGeometry(t *testing.T) {
	tests := map[string]entity.RenderOptions{
		"zero module size":     {Foreground: testBlack, Background: testWhite, ModuleSize: 0, QuietZone: 4},
		"negative module size": {Foreground: testBlack, Background: testWhite, ModuleSize: -3, QuietZone: 4},
		"negative quiet zone":  {Foreground: testBlack, Background: testWhite, ModuleSize: 10, QuietZone: -1},
	}

	m := testMatrix(t)
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Render(m, opts)
			require.ErrorIs(t, err, errorz.InvalidGeometry)
		})
	}
}

func TestRenderColors(t *testing.T) {
	m := testMatrix(t)
	img, err := Render(m, entity.RenderOptions{
		Foreground: testBlack,
		Background: testWhite,
		ModuleSize: 10,
		QuietZone:  4,
	})
	require.NoError(t, err)

	// quiet-zone corner is background
	assert.Equal(t, testWhite, img.RGBAAt(0, 0))

	// center of the top-left finder-pattern module is foreground
	assert.Equal(t, testBlack, img.RGBAAt(45, 45))
}

func TestRenderLowContrastStillRenders(t *testing.T) {
	m := testMatrix(t)
	img, err := Render(m, entity.RenderOptions{
		Foreground: color.RGBA{R: 120, G: 120, B: 120, A: 255},
		Background: color.RGBA{R: 125, G: 125, B: 125, A: 255},
		ModuleSize: 4,
		QuietZone:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, (m.Side()+8)*4, img.Bounds().Dx())
}
