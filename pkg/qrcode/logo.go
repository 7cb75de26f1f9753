package qrcode

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
)

// LoadLogo reads and decodes a logo image from disk. PNG and JPEG are
// supported; anything that cannot be decoded into a raster with known
// dimensions is rejected.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.UnsupportedLogo, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errorz.UnsupportedLogo, path, err)
	}
	return img, nil
}
