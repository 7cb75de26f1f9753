package entity

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Level is the QR error-correction level. Higher levels survive more damaged
// or occluded modules at the cost of data capacity.
type Level int

const (
	LevelLow    Level = iota // ~7% recoverable
	LevelMedium              // ~15% recoverable
	LevelQuart               // ~25% recoverable
	LevelHigh                // ~30% recoverable, required for logo overlays
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "L"
	case LevelMedium:
		return "M"
	case LevelQuart:
		return "Q"
	default:
		return "H"
	}
}

// ParseLevel reads a single-letter level name (L, M, Q or H), case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelLow, nil
	case "M":
		return LevelMedium, nil
	case "Q":
		return LevelQuart, nil
	case "H":
		return LevelHigh, nil
	default:
		return LevelHigh, fmt.Errorf("unknown error-correction level %q", s)
	}
}

// EncodingRequest is the input of the encoding stage. Level is always an
// explicit field; the pipeline never falls back to a library default.
type EncodingRequest struct {
	Content string
	Level   Level
}

// RenderOptions controls rasterization of a module matrix.
type RenderOptions struct {
	Foreground color.RGBA
	Background color.RGBA
	ModuleSize int // pixels per module, must be positive
	QuietZone  int // border width in modules, clamped up to the standard minimum
}

// LogoOptions describes the optional centered logo. A nil LogoOptions or a
// non-positive ScalePercent means no logo.
type LogoOptions struct {
	Image        image.Image
	ScalePercent int        // percentage of the composed image side, clamped to [10, 25]
	PaddingPx    int        // backing pad around the logo, 0 disables it
	Backing      color.RGBA // pad color, white when zero
}

// GenerationRequest aggregates every input of one generation. A fresh request
// is built per invocation and never retained by the pipeline.
type GenerationRequest struct {
	Content string
	Level   Level
	Render  RenderOptions
	Logo    *LogoOptions
}
