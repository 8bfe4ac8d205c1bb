// Package memory is an in-process secrets driver for tests and
// previews. It is not secure storage.
package memory

import (
	"context"
	"sync"

	"github.com/mygbu/authcore/secrets"
)

type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ secrets.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", secrets.ErrNotFound
	}
	return value, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
