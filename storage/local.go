package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalURLPrefix is the route under which locally stored attachments are served.
const LocalURLPrefix = "/files"

// LocalStorage implements Storage interface for the local filesystem,
// used in development when no object store is available.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// BasePath returns the directory holding uploaded attachments.
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// Upload stores an attachment locally and returns the URL it is served under
func (s *LocalStorage) Upload(ctx context.Context, filename string, data io.Reader, size int64, contentType string) (string, error) {
	blobName := generateBlobName(filename)
	fullPath := filepath.Join(s.basePath, blobName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return LocalURLPrefix + "/" + blobName, nil
}
