package qrcode

import (
	"image/color"

	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

// Classic is the tool's default look: black modules on white, 10px modules,
// standard quiet zone, level-H error correction.
var Classic = Config{
	Level: entity.LevelHigh,
	Render: entity.RenderOptions{
		Foreground: color.RGBA{A: 255},
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ModuleSize: 10,
		QuietZone:  StandardQuietZone,
	},
}
