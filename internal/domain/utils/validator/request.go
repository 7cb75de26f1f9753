package validator

import (
	"fmt"
	"strings"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
	"github.com/mhdservices/qrstudio/pkg/qrcode"
)

// GenerationRequest normalizes and checks a request in place. Content is
// trimmed, the quiet zone is widened to the standard minimum and a positive
// logo scale is clamped into its allowed range; everything else must already
// be valid.
func GenerationRequest(req *entity.GenerationRequest) error {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return errorz.EmptyContent
	}

	if req.Render.ModuleSize < 1 {
		return fmt.Errorf("%w: module size %dpx", errorz.InvalidGeometry, req.Render.ModuleSize)
	}
	if req.Render.QuietZone < 0 {
		return fmt.Errorf("%w: quiet zone %d modules", errorz.InvalidGeometry, req.Render.QuietZone)
	}
	if req.Render.QuietZone < qrcode.StandardQuietZone {
		req.Render.QuietZone = qrcode.StandardQuietZone
	}

	if req.Logo != nil && req.Logo.ScalePercent > 0 {
		req.Logo.ScalePercent = qrcode.ClampLogoScale(req.Logo.ScalePercent)
	}

	return nil
}
