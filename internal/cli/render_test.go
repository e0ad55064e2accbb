package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/history"
	"github.com/dmitrijs2005/clipdrop/internal/models"
)

func sampleRecords() []models.UploadRecord {
	created := time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC)
	return []models.UploadRecord{
		{
			ID:            "a",
			Provider:      models.ProviderS3,
			Category:      classify.CategoryImages,
			FileName:      "screenshot.png",
			FileExtension: "png",
			FileSizeBytes: 2 << 20,
			Key:           "images/08-2026/1-aa.png",
			URL:           "https://cdn.example.com/images/08-2026/1-aa.png",
			CreatedAt:     created,
		},
		{
			ID:            "b",
			Provider:      models.ProviderS3,
			Category:      classify.CategoryDocuments,
			FileName:      "notes.pdf",
			FileExtension: "pdf",
			FileSizeBytes: 512,
			Key:           "documents/08-2026/2-bb.pdf",
			URL:           "https://cdn.example.com/documents/08-2026/2-bb.pdf",
			CreatedAt:     created,
		},
	}
}

func TestRenderRecordsEmpty(t *testing.T) {
	assert.Equal(t, "No uploads yet.", renderRecords(nil, history.ViewModeList))
	assert.Equal(t, "No uploads yet.", renderRecords(nil, history.ViewModeGrid))
}

func TestRenderList(t *testing.T) {
	out := renderRecords(sampleRecords(), history.ViewModeList)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], " 1. ")
	assert.Contains(t, lines[0], "screenshot.png")
	assert.Contains(t, lines[0], "2.0 MB")
	assert.Contains(t, lines[0], "2026-08-12")
	assert.Contains(t, lines[0], "https://cdn.example.com/images/08-2026/1-aa.png")
	assert.Contains(t, lines[1], " 2. ")
	assert.Contains(t, lines[1], "512 B")
}

func TestRenderGrid(t *testing.T) {
	out := renderRecords(sampleRecords(), history.ViewModeGrid)
	assert.Contains(t, out, "screenshot.png")
	assert.Contains(t, out, "notes.pdf")
	assert.NotContains(t, out, "https://") // grid cells omit the URL
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short.png", truncateName("short.png", 20))
	got := truncateName("a-very-long-file-name-that-overflows.png", 20)
	assert.Len(t, []rune(got), 20)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "0 B", humanSize(0))
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.0 KB", humanSize(1024))
	assert.Equal(t, "2.5 MB", humanSize(5<<20/2))
	assert.Equal(t, "1.0 GB", humanSize(1<<30))
}
