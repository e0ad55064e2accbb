// Package storage defines the object-storage transport consumed by the
// upload orchestrator, with one variant per supported provider tag. The
// orchestrator selects behavior by matching the tag; adding a provider means
// adding a tag and a transport implementation here.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/models"
)

// Transport is the opaque put-object / check-bucket capability.
type Transport interface {
	// PutObject stores body under key in bucket with the given content type.
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error

	// HeadBucket verifies the bucket is reachable with the configured
	// credentials. Used by the configuration-save flow only.
	HeadBucket(ctx context.Context, bucket string) error
}

// NewTransport constructs the transport variant for the given provider tag.
func NewTransport(ctx context.Context, provider models.Provider, cfg config.StorageConfig, opts Options) (Transport, error) {
	switch provider {
	case models.ProviderS3:
		return NewS3Transport(ctx, cfg, opts)
	}
	return nil, fmt.Errorf("unsupported storage provider %q", provider)
}
