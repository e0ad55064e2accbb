// Package models defines the upload record and provider types persisted in
// the local history.
package models

import (
	"time"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
)

// Provider tags the storage backend a record was uploaded through. The set is
// closed: adding a provider means adding a constant here and a transport
// variant, not subclassing.
type Provider string

const (
	ProviderS3 Provider = "s3"
)

// Valid reports whether p is a known provider tag.
func (p Provider) Valid() bool {
	return p == ProviderS3
}

// UploadRecord describes one completed upload, independent of the uploaded
// bytes. Records are immutable once created; they are only ever deleted.
// Key and URL are derived together and never diverge.
type UploadRecord struct {
	ID            string            `json:"id"`
	Provider      Provider          `json:"provider"`
	Category      classify.Category `json:"category"`
	FileName      string            `json:"fileName"`
	FileExtension string            `json:"fileExtension"`
	FileSizeBytes int64             `json:"fileSizeBytes"`
	Key           string            `json:"key"`
	URL           string            `json:"url"`
	CreatedAt     time.Time         `json:"createdAt"`
}
