package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBlobName_UniquePerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := generateBlobName("photo.png")
		assert.False(t, seen[name], "blob names must not collide for repeated uploads of the same filename")
		seen[name] = true
	}
}

func TestGenerateBlobName_Format(t *testing.T) {
	name := generateBlobName("my photo.png")

	assert.True(t, strings.HasSuffix(name, ".png"), "extension must be preserved")
	assert.NotContains(t, name, " ", "spaces must be sanitized")

	// The prefix up to the first underscore is a fresh UUID.
	idx := strings.Index(name, "_")
	require.Greater(t, idx, 0)
	_, err := uuid.Parse(name[:idx])
	assert.NoError(t, err, "blob name must start with a UUID prefix")
}

func TestGenerateBlobName_StripsDirectories(t *testing.T) {
	name := generateBlobName("../../etc/passwd")

	assert.NotContains(t, name, "..")
	assert.True(t, strings.HasSuffix(name, "_passwd"))
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.png", "image/png"},
		{"photo.JPG", "image/jpeg"},
		{"scan.pdf", "application/pdf"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getContentType(tt.filename), tt.filename)
	}
}

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "photo.png", strings.NewReader("fake image bytes"), 16, "image/png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, LocalURLPrefix+"/"), "local URLs are served under %s", LocalURLPrefix)

	blobName := strings.TrimPrefix(url, LocalURLPrefix+"/")
	data, err := os.ReadFile(filepath.Join(dir, blobName))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorage_UploadSameFilenameTwice(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	url1, err := store.Upload(context.Background(), "photo.png", strings.NewReader("first"), 5, "")
	require.NoError(t, err)
	url2, err := store.Upload(context.Background(), "photo.png", strings.NewReader("second"), 6, "")
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2, "repeated uploads of the same filename must not collide")
}
