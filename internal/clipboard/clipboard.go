// Package clipboard defines the host clipboard capability consumed by the
// upload orchestrator and a system implementation backed by the OS clipboard.
package clipboard

import (
	"net/url"
	"strings"
)

// Snapshot is a point-in-time view of the clipboard. Any of the fields may be
// empty; File takes priority when producing an upload candidate.
type Snapshot struct {
	// File is a filesystem path, already normalized from a file:// URI.
	File string
	// HTML is markup content, when the host clipboard exposes it.
	HTML string
	// Text is the plain-text content.
	Text string
}

// ReadWriter reads clipboard snapshots and copies strings back.
type ReadWriter interface {
	// Read returns the current clipboard snapshot.
	Read() (Snapshot, error)

	// Write replaces the clipboard content with text.
	Write(text string) error
}

// FilePathFromString normalizes s into a filesystem path, stripping a
// file:// scheme and percent-encoding if present.
func FilePathFromString(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	p := strings.TrimPrefix(s, "file://")
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	return p
}
