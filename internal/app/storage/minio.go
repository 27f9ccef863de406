package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"call-scripter/internal/config"
)

const minioKeyPrefix = "record"

// MinioStore keeps records as objects in an S3-compatible bucket
type MinioStore struct {
	client   *minio.Client
	bucket   string
	logger   *zap.Logger
	nameFunc func(originalName string) string
}

// NewMinioStore connects to the object store and makes sure the bucket exists
func NewMinioStore(ctx context.Context, cfg config.MinioConfig, logger *zap.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("created record bucket", zap.String("bucket", cfg.Bucket))
	}

	return &MinioStore{
		client:   client,
		bucket:   cfg.Bucket,
		logger:   logger,
		nameFunc: RecordName,
	}, nil
}

// Backend implements RecordStore
func (s *MinioStore) Backend() string {
	return "minio"
}

// Save implements RecordStore
func (s *MinioStore) Save(ctx context.Context, originalName, contentType string, r io.Reader, size int64) (*Record, error) {
	for attempt := 0; attempt < MaxNameAttempts; attempt++ {
		name := s.nameFunc(originalName)
		key := objectKey(name)

		exists, err := s.exists(ctx, key)
		if err != nil {
			return nil, err
		}
		if exists {
			s.logger.Warn("record name collision, regenerating", zap.String("name", name))
			continue
		}

		objectContentType := contentType
		if objectContentType == "" {
			objectContentType = "application/octet-stream"
		}
		info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
			ContentType: objectContentType,
			UserMetadata: map[string]string{
				"original-name": originalName,
				"uploaded-at":   time.Now().UTC().Format(time.RFC3339),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload record to MinIO: %w", err)
		}

		s.logger.Debug("record saved",
			zap.String("name", name),
			zap.String("bucket", s.bucket),
			zap.Int64("size", info.Size),
		)
		return &Record{Name: name, MimeType: contentType, Size: info.Size}, nil
	}

	return nil, ErrNameExhausted
}

// Open implements RecordStore
func (s *MinioStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to stat record: %w", err)
	}
	return obj, nil
}

// Remove implements RecordStore
func (s *MinioStore) Remove(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectKey(name), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove record: %w", err)
	}
	return nil
}

func (s *MinioStore) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNoSuchKey(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check record existence: %w", err)
}

func objectKey(name string) string {
	return path.Join(minioKeyPrefix, name)
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
