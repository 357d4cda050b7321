package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"complaintdesk-backend/config"

	"github.com/google/uuid"
)

// Storage interface for attachment upload operations
type Storage interface {
	// Upload stores an attachment under a collision-resistant blob name
	// derived from the original filename and returns a retrievable URL.
	Upload(ctx context.Context, filename string, data io.Reader, size int64, contentType string) (string, error)
}

// NewStorage creates a storage backend from configuration
func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageType {
	case config.StorageTypeLocal:
		return NewLocalStorage(cfg.StorageLocalPath)
	case config.StorageTypeS3:
		return NewS3Storage(cfg)
	case config.StorageTypeMinio:
		return NewMinioStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// generateBlobName prefixes the sanitized original filename with a fresh
// UUID so repeated uploads of the same filename never collide.
func generateBlobName(filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filepath.Base(filename), ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	return fmt.Sprintf("%s_%s%s", uuid.New().String(), baseName, ext)
}

// getContentType determines content type from filename
func getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
