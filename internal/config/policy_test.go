package config

import (
	"testing"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaxUploadSizeMB(t *testing.T) {
	n, err := ParseMaxUploadSizeMB("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxUploadSizeMB, n)

	n, err = ParseMaxUploadSizeMB("10")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ParseMaxUploadSizeMB(" 25 ")
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	for _, bad := range []string{"0", "-1", "abc", "12.5", "25MB"} {
		_, err := ParseMaxUploadSizeMB(bad)
		assert.Error(t, err, "raw=%q", bad)
	}
}

func TestAllowedCategories_AbsentDefaultsToAllowed(t *testing.T) {
	allowed := AllowedCategories(map[string]any{})
	for _, cat := range classify.Categories() {
		assert.True(t, allowed[cat], "category %s", cat)
	}
}

func TestAllowedCategories_ExplicitFalseDenies(t *testing.T) {
	allowed := AllowedCategories(map[string]any{
		"images":   true,
		"videos":   false,
		"archives": "false",
		"audios":   "FALSE",
	})

	assert.True(t, allowed[classify.CategoryImages])
	assert.False(t, allowed[classify.CategoryVideos])
	assert.False(t, allowed[classify.CategoryArchives])
	assert.False(t, allowed[classify.CategoryAudios])
	// absent keys stay allowed
	assert.True(t, allowed[classify.CategoryDocuments])
	assert.True(t, allowed[classify.CategoryOthers])
}

func TestAllowedCategories_NonBooleanValuesAllow(t *testing.T) {
	allowed := AllowedCategories(map[string]any{
		"images": "yes",
		"videos": 0.0,
		"audios": nil,
	})
	assert.True(t, allowed[classify.CategoryImages])
	assert.True(t, allowed[classify.CategoryVideos])
	assert.True(t, allowed[classify.CategoryAudios])
}

func TestHistoryLimit(t *testing.T) {
	assert.Equal(t, 50, HistoryLimit("50"))
	assert.Equal(t, 100, HistoryLimit("100"))
	assert.Equal(t, 200, HistoryLimit("200"))
	assert.Equal(t, 500, HistoryLimit("500"))
	assert.Equal(t, 0, HistoryLimit("unlimited"))
	assert.Equal(t, 100, HistoryLimit(""))
	assert.Equal(t, 100, HistoryLimit("9000"))
}
