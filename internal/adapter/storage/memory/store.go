package memory

import (
	"context"
	"sync"

	"github.com/simaogato/assetly-backend/internal/domain"
)

// Store is a process-local domain.KeyValueStore. Data is lost on exit.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ domain.KeyValueStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{items: make(map[string]string)}
}

// GetItem returns the value stored under key
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem creates or replaces the value under key
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// RemoveItem deletes key
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
