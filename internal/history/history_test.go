package history

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/common"
	"github.com/dmitrijs2005/clipdrop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is a map-backed kv.Store for tests.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testRecord(id string) models.UploadRecord {
	return models.UploadRecord{
		ID:            id,
		Provider:      models.ProviderS3,
		Category:      classify.CategoryImages,
		FileName:      "photo.png",
		FileExtension: "png",
		FileSizeBytes: 1024,
		Key:           "images/01-2026/123-abcd1234.png",
		URL:           "https://cdn.example.com/images/01-2026/123-abcd1234.png",
		CreatedAt:     time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRead_Absent(t *testing.T) {
	s := NewStore(newMemoryKV())

	records, malformed, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, malformed)
	assert.Empty(t, records)
}

func TestPrepend_NewestFirstAndTruncated(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, malformed, err := s.Prepend(ctx, testRecord(fmt.Sprintf("r%d", i)), 3)
		require.NoError(t, err)
		assert.False(t, malformed)
	}

	records, malformed, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)

	require.Len(t, records, 3)
	assert.Equal(t, "r5", records[0].ID)
	assert.Equal(t, "r4", records[1].ID)
	assert.Equal(t, "r3", records[2].ID)
}

func TestPrepend_UnboundedLimit(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		_, _, err := s.Prepend(ctx, testRecord(fmt.Sprintf("r%d", i)), 0)
		require.NoError(t, err)
	}

	records, _, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestPrepend_ReturnsPreviousCollection(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	prev, _, err := s.Prepend(ctx, testRecord("a"), 0)
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, _, err = s.Prepend(ctx, testRecord("b"), 0)
	require.NoError(t, err)
	require.Len(t, prev, 1)
	assert.Equal(t, "a", prev[0].ID)
}

func TestRemove_PreservesOrder(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, _, err := s.Prepend(ctx, testRecord(id), 0)
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove(ctx, "b", 0))

	records, malformed, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
}

func TestRemove_UnknownID(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	_, _, err := s.Prepend(ctx, testRecord("a"), 0)
	require.NoError(t, err)

	err = s.Remove(ctx, "nope", 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClear_ThenReadIsEmptyAndClean(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	_, _, err := s.Prepend(ctx, testRecord("a"), 0)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	records, malformed, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)
	assert.Empty(t, records)
}

func TestRead_NonArrayValue(t *testing.T) {
	mem := newMemoryKV()
	mem.data[historyKey] = `{"not":"an array"}`
	s := NewStore(mem)

	records, malformed, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, malformed)
	assert.Empty(t, records)
}

func TestRead_MixedValidity(t *testing.T) {
	good := testRecord("good")
	b, err := json.Marshal([]any{
		good,
		map[string]any{"id": 42, "provider": "s3"}, // id not a string
	})
	require.NoError(t, err)

	mem := newMemoryKV()
	mem.data[historyKey] = string(b)
	s := NewStore(mem)

	records, malformed, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, malformed)
	require.Len(t, records, 1)
	assert.Equal(t, "good", records[0].ID)
}

func TestRead_DropsBadFieldTypes(t *testing.T) {
	base := testRecord("x")

	corrupt := func(mutate func(m map[string]any)) string {
		b, err := json.Marshal(base)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		mutate(m)
		out, err := json.Marshal([]any{m})
		require.NoError(t, err)
		return string(out)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"unknown provider", corrupt(func(m map[string]any) { m["provider"] = "gcs" })},
		{"unknown category", corrupt(func(m map[string]any) { m["category"] = "pictures" })},
		{"negative size", corrupt(func(m map[string]any) { m["fileSizeBytes"] = -5 })},
		{"fractional size", corrupt(func(m map[string]any) { m["fileSizeBytes"] = 1.5 })},
		{"numeric url", corrupt(func(m map[string]any) { m["url"] = 1 })},
		{"bad createdAt", corrupt(func(m map[string]any) { m["createdAt"] = "yesterday" })},
		{"empty id", corrupt(func(m map[string]any) { m["id"] = "" })},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := newMemoryKV()
			mem.data[historyKey] = tc.raw
			s := NewStore(mem)

			records, malformed, err := s.Read(context.Background())
			require.NoError(t, err)
			assert.True(t, malformed)
			assert.Empty(t, records)
		})
	}
}

func TestRead_DuplicateIDsKeepFirst(t *testing.T) {
	b, err := json.Marshal([]any{testRecord("dup"), testRecord("dup")})
	require.NoError(t, err)

	mem := newMemoryKV()
	mem.data[historyKey] = string(b)
	s := NewStore(mem)

	records, malformed, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, malformed)
	assert.Len(t, records, 1)
}

func TestPrepend_HealsCorruptState(t *testing.T) {
	mem := newMemoryKV()
	mem.data[historyKey] = `"garbage"`
	s := NewStore(mem)
	ctx := context.Background()

	prev, malformed, err := s.Prepend(ctx, testRecord("fresh"), 0)
	require.NoError(t, err)
	assert.True(t, malformed)
	assert.Empty(t, prev)

	// corrupted state was overwritten with a clean equivalent
	records, malformed, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].ID)
}

func TestViewMode_DefaultAndRoundTrip(t *testing.T) {
	s := NewStore(newMemoryKV())
	ctx := context.Background()

	mode, malformed, err := s.ReadViewMode(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)
	assert.Equal(t, DefaultViewMode, mode)

	require.NoError(t, s.WriteViewMode(ctx, ViewModeGrid))

	mode, malformed, err = s.ReadViewMode(ctx)
	require.NoError(t, err)
	assert.False(t, malformed)
	assert.Equal(t, ViewModeGrid, mode)
}

func TestViewMode_UnrecognizedValue(t *testing.T) {
	mem := newMemoryKV()
	mem.data[viewModeKey] = `"mosaic"`
	s := NewStore(mem)

	mode, malformed, err := s.ReadViewMode(context.Background())
	require.NoError(t, err)
	assert.True(t, malformed)
	assert.Equal(t, DefaultViewMode, mode)

	mem.data[viewModeKey] = `not json`
	mode, malformed, err = s.ReadViewMode(context.Background())
	require.NoError(t, err)
	assert.True(t, malformed)
	assert.Equal(t, DefaultViewMode, mode)
}
