package qrcode

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

// StandardQuietZone is the minimum quiet-zone width in modules required by
// the QR standard for reliable scanning. Narrower configurations are widened
// to it.
const StandardQuietZone = 4

// Render rasterizes the matrix: one ModuleSize square per module, Foreground
// for dark modules on a Background canvas, surrounded by a uniform quiet
// zone. Contrast between the two colors is the caller's responsibility; low
// contrast renders fine but scans poorly.
func Render(m *Matrix, opts entity.RenderOptions) (*image.RGBA, error) {
	if opts.ModuleSize < 1 {
		return nil, fmt.Errorf("%w: module size %dpx", errorz.InvalidGeometry, opts.ModuleSize)
	}
	if opts.QuietZone < 0 {
		return nil, fmt.Errorf("%w: quiet zone %d modules", errorz.InvalidGeometry, opts.QuietZone)
	}

	border := opts.QuietZone
	if border < StandardQuietZone {
		border = StandardQuietZone
	}
	side := (m.Side() + 2*border) * opts.ModuleSize

	dc := gg.NewContext(side, side)
	dc.SetColor(opts.Background)
	dc.Clear()

	dc.SetColor(opts.Foreground)
	for r := 0; r < m.Side(); r++ {
		for c := 0; c < m.Side(); c++ {
			if !m.Dark(r, c) {
				continue
			}
			x := float64((c + border) * opts.ModuleSize)
			y := float64((r + border) * opts.ModuleSize)
			dc.DrawRectangle(x, y, float64(opts.ModuleSize), float64(opts.ModuleSize))
		}
	}
	dc.Fill()

	if img, ok := dc.Image().(*image.RGBA); ok {
		return img, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}
