package memory

import (
	"context"
	"sync"

	"mappins/internal/domain/repository/blobstore"
)

// Store keeps documents in process memory. It backs the "memory" storage driver used
// for local runs and tests; nothing survives a restart.
type Store struct {
	mu        sync.RWMutex
	namespace string
	blobs     map[string][]byte
}

func NewStore(namespace string) *Store {
	return &Store{
		namespace: namespace,
		blobs:     make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[blobstore.Key(s.namespace, key)]
	if !ok {
		return nil, blobstore.ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[blobstore.Key(s.namespace, key)] = stored

	return nil
}
