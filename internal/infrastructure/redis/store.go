package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mappins/internal/domain/repository/blobstore"
	"mappins/pkg/logger"
)

// Store keeps each document as a plain string value under <namespace>/<key>.
type Store struct {
	redis     *redis.Client
	namespace string
	timeout   time.Duration
}

func NewStore(cfg Config, namespace string) (*Store, error) {
	cfg = cfg.WithDefaults()

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	s := &Store{
		redis:     redis.NewClient(opt),
		namespace: namespace,
		timeout:   time.Duration(cfg.Timeout) * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.redis.Ping(ctx).Err(); err != nil {
		_ = s.redis.Close()

		return nil, err
	}

	return s, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.redis.Get(ctx, blobstore.Key(s.namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, blobstore.ErrNotFound
		}

		logger.Error("failed to read blob", "key", key, "err", err)

		return nil, err
	}

	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.redis.Set(ctx, blobstore.Key(s.namespace, key), value, 0).Err(); err != nil {
		logger.Error("failed to write blob", "key", key, "err", err)

		return err
	}

	return nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
