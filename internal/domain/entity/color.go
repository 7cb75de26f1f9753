package entity

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor reads a "#rrggbb" value. The names "black" and "white" are
// accepted as shorthands since they are the tool's defaults.
func ParseHexColor(s string) (color.RGBA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return color.RGBA{A: 255}, nil
	case "white":
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
