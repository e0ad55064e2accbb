// Package history persists the ordered, bounded list of upload records and
// the browsing view-mode flag in durable key-value storage. Persisted bytes
// are never trusted: every read schema-checks the stored JSON and reports
// whether invalid data was dropped, so callers can rewrite clean state.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/common"
	"github.com/dmitrijs2005/clipdrop/internal/kv"
	"github.com/dmitrijs2005/clipdrop/internal/models"
)

// Storage keys carry a schema version so a schema change simply starts empty
// instead of migrating old data in place.
const (
	historyKey  = "upload_history_v2"
	viewModeKey = "view_mode_v1"
)

// ViewMode is the persisted presentation preference of the browsing command.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"

	// DefaultViewMode is used when nothing valid is stored.
	DefaultViewMode = ViewModeList
)

// Store reads and writes the upload history through a kv.Store.
type Store struct {
	kv kv.Store
}

// NewStore returns a Store backed by the given key-value storage.
func NewStore(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// Read loads the persisted collection. An absent key yields an empty, clean
// collection. Stored data that is not a JSON array yields an empty collection
// with wasMalformed=true; individual elements failing the record schema are
// dropped and also set wasMalformed.
func (s *Store) Read(ctx context.Context) ([]models.UploadRecord, bool, error) {
	raw, ok, err := s.kv.Get(ctx, historyKey)
	if err != nil {
		return nil, false, fmt.Errorf("read history: %w", err)
	}
	if !ok {
		return []models.UploadRecord{}, false, nil
	}

	records, malformed := decodeRecords(raw)
	return records, malformed, nil
}

// Write truncates records to limit (0 means unbounded) and persists them.
// It must follow every mutation and every read that reported malformed data,
// so corrupted state is overwritten with a clean equivalent.
func (s *Store) Write(ctx context.Context, records []models.UploadRecord, limit int) error {
	records = truncate(records, limit)

	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.kv.Set(ctx, historyKey, string(b)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Prepend inserts record at the head, truncated to limit, and returns the
// pre-insertion collection together with whether that collection had to be
// repaired. The returned flag lets the caller report self-healing that
// happened on this same operation.
func (s *Store) Prepend(ctx context.Context, record models.UploadRecord, limit int) ([]models.UploadRecord, bool, error) {
	previous, malformed, err := s.Read(ctx)
	if err != nil {
		return nil, false, err
	}

	next := make([]models.UploadRecord, 0, len(previous)+1)
	next = append(next, record)
	next = append(next, previous...)

	if err := s.Write(ctx, next, limit); err != nil {
		return nil, false, err
	}
	return previous, malformed, nil
}

// Remove deletes the record with the given id, preserving the relative order
// of the rest. It returns common.ErrorNotFound when no record matches.
func (s *Store) Remove(ctx context.Context, id string, limit int) error {
	records, _, err := s.Read(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return common.ErrorNotFound
	}

	return s.Write(ctx, kept, limit)
}

// Clear deletes the persisted collection entirely. This is the explicit
// user-facing reset, distinct from writing an empty collection.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, historyKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// ReadViewMode returns the persisted view mode, defaulting when the key is
// absent or holds an unrecognized value. The second result reports whether
// stored data had to be discarded.
func (s *Store) ReadViewMode(ctx context.Context) (ViewMode, bool, error) {
	raw, ok, err := s.kv.Get(ctx, viewModeKey)
	if err != nil {
		return DefaultViewMode, false, fmt.Errorf("read view mode: %w", err)
	}
	if !ok {
		return DefaultViewMode, false, nil
	}

	var mode string
	if err := json.Unmarshal([]byte(raw), &mode); err != nil {
		return DefaultViewMode, true, nil
	}
	switch ViewMode(mode) {
	case ViewModeGrid, ViewModeList:
		return ViewMode(mode), false, nil
	}
	return DefaultViewMode, true, nil
}

// WriteViewMode persists mode unconditionally.
func (s *Store) WriteViewMode(ctx context.Context, mode ViewMode) error {
	b, err := json.Marshal(string(mode))
	if err != nil {
		return fmt.Errorf("marshal view mode: %w", err)
	}
	if err := s.kv.Set(ctx, viewModeKey, string(b)); err != nil {
		return fmt.Errorf("write view mode: %w", err)
	}
	return nil
}

func truncate(records []models.UploadRecord, limit int) []models.UploadRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

// decodeRecords parses raw as a JSON array of upload records, dropping every
// element that fails the schema check. The second result is true when raw was
// not an array or when at least one element was dropped.
func decodeRecords(raw string) ([]models.UploadRecord, bool) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return []models.UploadRecord{}, true
	}

	records := make([]models.UploadRecord, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))
	malformed := false

	for _, el := range elements {
		rec, ok := decodeRecord(el)
		if !ok {
			malformed = true
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			malformed = true
			continue
		}
		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}
	return records, malformed
}

func decodeRecord(raw json.RawMessage) (models.UploadRecord, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.UploadRecord{}, false
	}

	id, ok := fields["id"].(string)
	if !ok || id == "" {
		return models.UploadRecord{}, false
	}

	provider, ok := fields["provider"].(string)
	if !ok || !models.Provider(provider).Valid() {
		return models.UploadRecord{}, false
	}

	category, ok := fields["category"].(string)
	if !ok || !classify.Category(category).Valid() {
		return models.UploadRecord{}, false
	}

	for _, name := range []string{"fileName", "fileExtension", "key", "url"} {
		if _, ok := fields[name].(string); !ok {
			return models.UploadRecord{}, false
		}
	}

	size, ok := fields["fileSizeBytes"].(float64)
	if !ok || size < 0 || math.IsInf(size, 0) || math.IsNaN(size) || size != math.Trunc(size) {
		return models.UploadRecord{}, false
	}

	createdAt, ok := fields["createdAt"].(string)
	if !ok {
		return models.UploadRecord{}, false
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.UploadRecord{}, false
	}

	return models.UploadRecord{
		ID:            id,
		Provider:      models.Provider(provider),
		Category:      classify.Category(category),
		FileName:      fields["fileName"].(string),
		FileExtension: fields["fileExtension"].(string),
		FileSizeBytes: int64(size),
		Key:           fields["key"].(string),
		URL:           fields["url"].(string),
		CreatedAt:     created,
	}, true
}
