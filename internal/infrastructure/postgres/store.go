package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mappins/internal/domain/repository/blobstore"
	"mappins/pkg/logger"
)

const defaultTable = "blobs"

// Store keeps each document verbatim as one row of a (namespace, key) keyed table.
type Store struct {
	pool      *pgxpool.Pool
	namespace string
	table     string
	timeout   time.Duration
}

func Connect(ctx context.Context, cfg Config, namespace string) (*Store, error) {
	cfg = cfg.WithDefaults()

	table := cfg.Table
	if table == "" {
		table = defaultTable
	}

	s := &Store{
		namespace: namespace,
		table:     pgx.Identifier{table}.Sanitize(),
		timeout:   time.Duration(cfg.Timeout) * time.Millisecond,
	}

	cCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pool, err := pgxpool.New(cCtx, cfg.URI)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(cCtx); err != nil {
		pool.Close()

		return nil, err
	}
	s.pool = pool

	if err := s.migrate(cCtx); err != nil {
		pool.Close()

		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		namespace  TEXT NOT NULL,
		key        TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (namespace, key)
	)`, s.table))

	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var data string
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT data FROM %s WHERE namespace = $1 AND key = $2`, s.table),
		s.namespace, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blobstore.ErrNotFound
		}

		logger.Error("failed to read blob", "key", key, "err", err)

		return nil, err
	}

	return []byte(data), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (namespace, key, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`, s.table),
		s.namespace, key, string(value))
	if err != nil {
		logger.Error("failed to write blob", "key", key, "err", err)

		return err
	}

	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}
