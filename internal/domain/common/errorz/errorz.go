package errorz

import "errors"

var (
	EmptyContent     = errors.New("content is empty")
	ContentTooLong   = errors.New("content does not fit into any qr version")
	InvalidGeometry  = errors.New("invalid render geometry")
	UnsupportedLogo  = errors.New("logo image cannot be decoded")
	ScanVerification = errors.New("composed image does not scan back to its content")
)
