package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"mappins/internal/domain/repository/blobstore"
	"mappins/pkg/logger"
)

const noSuchKey = "NoSuchKey"

// Store keeps each document as a JSON object named <namespace>/<key> in one bucket.
type Store struct {
	minioClient *minio.Client
	namespace   string
	cfg         StoreConfig
}

func NewStore(minioClient *minio.Client, namespace string, cfg StoreConfig) *Store {
	return &Store{
		minioClient: minioClient,
		namespace:   namespace,
		cfg:         cfg.WithDefaults(),
	}
}

// EnsureBucket creates the configured bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	exists, err := s.minioClient.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}

	logger.Info("creating minio bucket", "bucket", s.cfg.Bucket)

	return s.minioClient.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region})
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	object, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, blobstore.Key(s.namespace, key), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, s.mapError(err)
	}

	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	_, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, blobstore.Key(s.namespace, key),
		bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
	if err != nil {
		logger.Error("failed to put object", "bucket", s.cfg.Bucket, "key", key, "err", err)

		return err
	}

	return nil
}

func (s *Store) mapError(err error) error {
	if minio.ToErrorResponse(err).Code == noSuchKey {
		return blobstore.ErrNotFound
	}

	logger.Error("failed to get object", "bucket", s.cfg.Bucket, "err", err)

	return err
}

func (s *Store) timeout() time.Duration {
	return time.Duration(s.cfg.Timeout) * time.Millisecond
}
