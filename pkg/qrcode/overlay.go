package qrcode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/nfnt/resize"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

// Logo scale bounds as a percentage of the composed image side. Below the
// lower bound the logo is illegible; above the upper bound it occludes more
// modules than level-H error correction can repair.
const (
	MinLogoScalePercent = 10
	MaxLogoScalePercent = 25
)

// ClampLogoScale bounds a positive percentage to the allowed range.
func ClampLogoScale(percent int) int {
	if percent < MinLogoScalePercent {
		return MinLogoScalePercent
	}
	if percent > MaxLogoScalePercent {
		return MaxLogoScalePercent
	}
	return percent
}

// Overlay composites the logo, centered, onto a copy of base. The logo is
// scaled to fit a square bounding box of ScalePercent of the image side,
// preserving its aspect ratio, and alpha-blended over an optional backing
// pad. base is returned unchanged when there is nothing to draw; it is
// never mutated.
func Overlay(base *image.RGBA, logo *entity.LogoOptions) (*image.RGBA, error) {
	if logo == nil || logo.Image == nil || logo.ScalePercent <= 0 {
		return base, nil
	}

	lb := logo.Image.Bounds()
	if lb.Dx() < 1 || lb.Dy() < 1 {
		return nil, fmt.Errorf("%w: logo has no pixels", errorz.UnsupportedLogo)
	}

	side := base.Bounds().Dx()
	scale := ClampLogoScale(logo.ScalePercent)
	target := int(math.Round(float64(side) * float64(scale) / 100))

	// fit inside the target box without stretching
	w, h := target, target
	if lb.Dx() > lb.Dy() {
		h = int(math.Round(float64(target) * float64(lb.Dy()) / float64(lb.Dx())))
	} else if lb.Dy() > lb.Dx() {
		w = int(math.Round(float64(target) * float64(lb.Dx()) / float64(lb.Dy())))
	}
	scaled := resize.Resize(uint(w), uint(h), logo.Image, resize.Lanczos3)

	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)

	if logo.PaddingPx > 0 {
		backing := logo.Backing
		if backing.A == 0 {
			backing = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		pw, ph := w+logo.PaddingPx, h+logo.PaddingPx
		px, py := (side-pw)/2, (side-ph)/2
		draw.Draw(out, image.Rect(px, py, px+pw, py+ph), &image.Uniform{C: backing}, image.Point{}, draw.Over)
	}

	x, y := (side-w)/2, (side-h)/2
	draw.Draw(out, image.Rect(x, y, x+w, y+h), scaled, scaled.Bounds().Min, draw.Over)

	return out, nil
}
