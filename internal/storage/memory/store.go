package memory

import (
	"context"
	"sync"

	"github.com/commonsapp/commons/internal/storage"
)

// Store is an in-memory implementation of the storage interface. It is not
// durable and is intended for tests and ephemeral runs.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(value))
	copy(buf, value)
	s.data[key] = buf
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	buf := make([]byte, len(value))
	copy(buf, value)
	return buf, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
