// Package kv implements the durable key-value storage consumed by the history
// store. Values are opaque strings; serialization belongs to the caller.
package kv

import "context"

// Store is the durable key-value capability: string values, presence
// distinguished from emptiness.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set persists value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key entirely. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
