package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

func recoveryLevel(l entity.Level) qr.RecoveryLevel {
	switch l {
	case entity.LevelLow:
		return qr.Low
	case entity.LevelMedium:
		return qr.Medium
	case entity.LevelQuart:
		return qr.High
	default:
		return qr.Highest
	}
}

// Encode builds the module matrix for content at the given error-correction
// level. The smallest QR version that fits the content is chosen
// automatically; the numeric, alphanumeric or byte mode is picked per
// segment by the underlying encoder.
func Encode(content string, level entity.Level) (*Matrix, error) {
	if content == "" {
		return nil, errorz.EmptyContent
	}

	code, err := qr.New(content, recoveryLevel(level))
	if err != nil {
		// non-empty input only fails when no version up to 40 can hold it
		return nil, fmt.Errorf("%w: %v", errorz.ContentTooLong, err)
	}
	code.DisableBorder = true

	return &Matrix{modules: code.Bitmap(), version: code.VersionNumber}, nil
}
