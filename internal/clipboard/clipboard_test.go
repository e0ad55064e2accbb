package clipboard

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePathFromString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/tmp/photo.png", "/tmp/photo.png"},
		{"file:///tmp/photo.png", "/tmp/photo.png"},
		{"file:///tmp/with%20space.png", "/tmp/with space.png"},
		{"  /tmp/trimmed.png  ", "/tmp/trimmed.png"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FilePathFromString(tc.in), "in=%q", tc.in)
	}
}

func TestDecodeImageDataURI_Valid(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, ext, ok := DecodeImageDataURI(`<img src="` + uri + `">`)
	require.True(t, ok)
	assert.Equal(t, "png", ext)
	assert.Equal(t, payload, data)
}

func TestDecodeImageDataURI_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no uri", "just some text"},
		{"unrecognized mime", "data:image/vnd.exotic;base64,AAAA"},
		{"not an image", "data:application/pdf;base64,AAAA"},
		{"invalid base64", "data:image/png;base64,####"},
		{"empty payload", "data:image/png;base64,="},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := DecodeImageDataURI(tc.in)
			assert.False(t, ok)
		})
	}
}

func TestSystemRead_FileDetection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	orig := readAll
	t.Cleanup(func() { readAll = orig })
	readAll = func() (string, error) { return path, nil }

	snap, err := NewSystem().Read()
	require.NoError(t, err)
	assert.Equal(t, path, snap.File)
	assert.Equal(t, path, snap.Text)

	readAll = func() (string, error) { return "hello world", nil }
	snap, err = NewSystem().Read()
	require.NoError(t, err)
	assert.Equal(t, "", snap.File)
	assert.Equal(t, "hello world", snap.Text)
}
