package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/fwojciec/lexarchive"
)

var _ lexarchive.KeyValueStore = (*MemStore)(nil)

// MemStore is an in-memory lexarchive.KeyValueStore that records how many
// times Set was called.
type MemStore struct {
	mu       sync.Mutex
	data     map[string]string
	SetCalls int
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (s *MemStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.SetCalls++
	return nil
}
