package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clipdrop/internal/history"
	"github.com/dmitrijs2005/clipdrop/internal/models"
)

const gridColumns = 3

// renderRecords formats records for the terminal in the given view mode.
// Indexes are 1-based and refer to positions in the rendered slice.
func renderRecords(records []models.UploadRecord, mode history.ViewMode) string {
	if len(records) == 0 {
		return "No uploads yet."
	}
	if mode == history.ViewModeGrid {
		return renderGrid(records)
	}
	return renderList(records)
}

func renderList(records []models.UploadRecord) string {
	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "%2d. %-10s %-30s %9s  %s  %s\n",
			i+1, r.Category, truncateName(r.FileName, 30), humanSize(r.FileSizeBytes),
			r.CreatedAt.Format("2006-01-02"), r.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGrid(records []models.UploadRecord) string {
	var b strings.Builder
	for i, r := range records {
		cell := fmt.Sprintf("%2d. %s (%s)", i+1, truncateName(r.FileName, 20), humanSize(r.FileSizeBytes))
		fmt.Fprintf(&b, "%-36s", cell)
		if (i+1)%gridColumns == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
