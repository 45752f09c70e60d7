package mock

import (
	"context"

	"github.com/fwojciec/lexarchive"
)

var _ lexarchive.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is a mock implementation of lexarchive.KeyValueStore.
type KeyValueStore struct {
	KeysFn func(ctx context.Context) ([]string, error)
	GetFn  func(ctx context.Context, key string) (string, bool, error)
	SetFn  func(ctx context.Context, key, value string) error
}

func (s *KeyValueStore) Keys(ctx context.Context) ([]string, error) {
	return s.KeysFn(ctx)
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}
