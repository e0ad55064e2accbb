package clipboard

import (
	"encoding/base64"
	"regexp"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
)

var imageDataURIPattern = regexp.MustCompile(`data:(image/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=]+)`)

// DecodeImageDataURI scans s for an embedded `data:image/...;base64,...` URI
// and decodes it. It reports ok=false on any decode problem (no URI, invalid
// base64, unrecognized MIME type, empty payload) so callers can keep scanning
// other clipboard sources instead of failing outright.
func DecodeImageDataURI(s string) (data []byte, ext string, ok bool) {
	m := imageDataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, "", false
	}

	ext, ok = classify.ExtensionForImageMIME(m[1])
	if !ok {
		return nil, "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil || len(decoded) == 0 {
		return nil, "", false
	}

	return decoded, ext, true
}
