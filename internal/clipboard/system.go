package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// readAll and writeAll are seams for the OS clipboard in tests.
var (
	readAll  = clipboard.ReadAll
	writeAll = clipboard.WriteAll
)

// System reads the OS clipboard. Text-only hosts cannot expose a separate
// file slot, so a text payload naming an existing regular file (or a file://
// URI) is surfaced through Snapshot.File as well.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Read() (Snapshot, error) {
	text, err := readAll()
	if err != nil {
		return Snapshot{}, fmt.Errorf("read clipboard: %w", err)
	}

	snap := Snapshot{Text: text}

	if path := FilePathFromString(text); path != "" {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			snap.File = path
		}
	}

	return snap, nil
}

func (s *System) Write(text string) error {
	if err := writeAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
