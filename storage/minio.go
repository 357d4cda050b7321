package storage

import (
	"context"
	"fmt"
	"io"

	appconfig "complaintdesk-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage interface for MinIO / S3-compatible endpoints
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a new MinIO storage instance
func NewMinioStorage(cfg *appconfig.Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStorage{
		client: client,
		bucket: cfg.StorageBucket,
	}, nil
}

// EnsureBucket makes sure the attachment bucket exists before use
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Upload stores an attachment in MinIO and returns its object URL
func (s *MinioStorage) Upload(ctx context.Context, filename string, data io.Reader, size int64, contentType string) (string, error) {
	blobName := generateBlobName(filename)

	if contentType == "" {
		contentType = getContentType(filename)
	}

	_, err := s.client.PutObject(ctx, s.bucket, blobName, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, blobName), nil
}
