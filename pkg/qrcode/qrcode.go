// Package qrcode implements the QR composition pipeline: encode text into a
// module matrix, rasterize it with configurable colors, and optionally
// composite a centered logo. Every stage is a pure function of its inputs;
// the pipeline holds no state between invocations.
package qrcode

import (
	"bytes"
	"image"
	"image/png"

	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

// Config carries every input of one generation. Build a fresh Config per
// request; the pipeline never mutates or retains it.
type Config struct {
	Content string
	Level   entity.Level
	Render  entity.RenderOptions
	Logo    *entity.LogoOptions
}

// Generate runs the full pipeline. The first failing stage short-circuits
// and no partial output is returned.
func (c *Config) Generate() (*image.RGBA, error) {
	m, err := Encode(c.Content, c.Level)
	if err != nil {
		return nil, err
	}
	img, err := Render(m, c.Render)
	if err != nil {
		return nil, err
	}
	return Overlay(img, c.Logo)
}

// PNG runs the pipeline and encodes the composed image.
func (c *Config) PNG() ([]byte, error) {
	img, err := c.Generate()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
