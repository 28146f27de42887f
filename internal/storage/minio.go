// Package storage reports on the S3-compatible bucket the deployment provisions
// next to the service.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eksapi/internal/config"
)

// ErrBucketMissing is returned by PingContext when the endpoint answers but the bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// Bucket is a readiness check for one bucket on an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type Bucket struct {
	client *minio.Client
	name   string
}

// NewMinIO validates cfg and builds the client. It does not contact the endpoint;
// connectivity is checked on each PingContext.
func NewMinIO(cfg config.MinIOConfig) (*Bucket, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Bucket{client: cli, name: cfg.Bucket}, nil
}

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.name }

// PingContext checks that the bucket is reachable and exists.
func (b *Bucket) PingContext(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.name)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", b.name, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", b.name, ErrBucketMissing)
	}
	return nil
}
