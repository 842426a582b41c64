package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage keeps payment proofs and generated site artifacts in one bucket.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig, log logger.Logger) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make or verify bucket %s: %w", cfg.Bucket, err)
		}
		log.Debugf("Bucket %s already exists", cfg.Bucket)
	} else {
		log.Infof("Bucket %s created", cfg.Bucket)
	}

	return &MinIOStorage{client: client, bucket: cfg.Bucket, log: log.With("component", "minio_storage")}, nil
}

// Upload stores data under prefix with a random object name that keeps the
// original file extension, and returns the object's public URL.
func (s *MinIOStorage) Upload(ctx context.Context, prefix, fileName, contentType string, data []byte) (string, error) {
	key := ObjectKey(prefix, fileName)
	return s.Put(ctx, key, contentType, data)
}

// Put writes data to a fixed key, replacing any previous object.
func (s *MinIOStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", key, s.bucket, err)
	}
	s.log.Infof("Stored object %s (%d bytes, etag %s)", info.Key, info.Size, info.ETag)
	return s.URL(key), nil
}

func (s *MinIOStorage) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, key)
}

// ObjectKey builds "<prefix>/<uuid><ext>" with a lowercased extension.
func ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	name := uuid.New().String() + ext
	if prefix == "" {
		return name
	}
	return path.Join(strings.Trim(prefix, "/"), name)
}
