package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
	"github.com/mhdservices/qrstudio/internal/domain/utils/validator"
	"github.com/mhdservices/qrstudio/pkg/logger"
	"github.com/mhdservices/qrstudio/pkg/qrcode"
)

// Generator runs validated generation requests through the composition
// pipeline and handles export. It is stateless apart from its logger and is
// safe to call from multiple goroutines.
type Generator struct {
	log *logger.Logger
}

func NewGenerator(log *logger.Logger) *Generator {
	return &Generator{log: log.Named("generator")}
}

// Generate validates the request and runs encode, render and overlay.
func (g *Generator) Generate(req entity.GenerationRequest) (*image.RGBA, error) {
	if req.Logo != nil {
		logo := *req.Logo // keep clamping away from the caller's copy
		req.Logo = &logo
	}
	if err := validator.GenerationRequest(&req); err != nil {
		return nil, err
	}

	cfg := qrcode.Config{
		Content: req.Content,
		Level:   req.Level,
		Render:  req.Render,
		Logo:    req.Logo,
	}
	img, err := cfg.Generate()
	if err != nil {
		return nil, err
	}

	g.log.Debugf("generated %dx%d px qr code", img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// GeneratePNG generates and PNG-encodes in one step.
func (g *Generator) GeneratePNG(req entity.GenerationRequest) ([]byte, error) {
	img, err := g.Generate(req)
	if err != nil {
		return nil, err
	}
	return g.EncodePNG(img)
}

// EncodePNG serializes a composed image.
func (g *Generator) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveImage writes a composed image to an explicit path.
func (g *Generator) SaveImage(img image.Image, path string) error {
	data, err := g.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	g.log.Infof("qr code saved as %s", path)
	return nil
}

// SaveImageToDir writes a composed image into dir under a generated
// filename, creating the directory when needed, and returns the path.
func (g *Generator) SaveImageToDir(img image.Image, dir string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, uuid.New().String()+".png")
	if err := g.SaveImage(img, path); err != nil {
		return "", err
	}
	return path, nil
}

// Preview downscales a composed image to fit a maxSide square, preserving
// aspect ratio. Images already small enough are returned as-is.
func (g *Generator) Preview(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return img
	}
	return resize.Thumbnail(uint(maxSide), uint(maxSide), img, resize.Lanczos3)
}

// Verify scans a composed image and checks that it decodes back to content.
func (g *Generator) Verify(img image.Image, content string) error {
	decoded, err := qrcode.Decode(img)
	if err != nil {
		return fmt.Errorf("%w: %v", errorz.ScanVerification, err)
	}
	if decoded != content {
		return fmt.Errorf("%w: decoded %q", errorz.ScanVerification, decoded)
	}
	return nil
}
