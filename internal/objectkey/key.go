// Package objectkey builds collision-resistant, time-partitioned storage keys
// and the public URLs derived from them.
package objectkey

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
)

// Generator produces storage keys. The time and randomness sources are seams
// so tests can pin them.
type Generator struct {
	now      func() time.Time
	randRead func(b []byte) (int, error)
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now, randRead: rand.Read}
}

// Key returns `<category>/<mm>-<yyyy>/<epoch-millis>-<8-hex>.<ext>`. The
// random part is 4 bytes of crypto/rand, so two uploads in the same
// millisecond do not collide in practice. The extension is sanitized and
// defaults to "bin".
func (g *Generator) Key(category classify.Category, ext string) (string, error) {
	ext = SanitizeExtension(ext)

	b := make([]byte, 4)
	if _, err := g.randRead(b); err != nil {
		return "", fmt.Errorf("random suffix: %w", err)
	}

	t := g.now()
	return fmt.Sprintf("%s/%02d-%04d/%d-%s.%s",
		category, int(t.Month()), t.Year(), t.UnixMilli(), hex.EncodeToString(b), ext), nil
}

// SanitizeExtension strips leading dots, lowercases and defaults to "bin".
func SanitizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
	if ext == "" {
		return "bin"
	}
	return ext
}

// BuildPublicURL joins base and key, trimming trailing slashes from base and
// percent-encoding each key segment independently so literal slashes stay
// path separators.
func BuildPublicURL(base, key string) string {
	base = strings.TrimRight(base, "/")
	segments := strings.Split(key, "/")
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return base + "/" + strings.Join(escaped, "/")
}
