package lexarchive

import (
	"context"
	"slices"
	"time"
)

// KeyValueStore is a persistent mapping from string keys to string values
// that survives process restarts.
type KeyValueStore interface {
	// Keys returns every stored key.
	Keys(ctx context.Context) ([]string, error)

	// Get returns the value stored under key.
	// The ok result is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// ArchiveService is the view of the key/value store that harvesting uses.
// Keys are source URLs and values are extracted section markup.
type ArchiveService interface {
	// Has reports whether an entry exists for key.
	Has(ctx context.Context, key string) (bool, error)

	// Get returns the archived fragment for key.
	// The ok result is false if the key has not been archived.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put archives value under key.
	Put(ctx context.Context, key, value string) error

	// Keys returns every archived key.
	Keys(ctx context.Context) ([]string, error)
}

// Entry describes an archived fragment without its content.
type Entry struct {
	Key         string    `json:"key"`
	ContentHash string    `json:"contentHash"`
	Size        int       `json:"size"`
	StoredAt    time.Time `json:"storedAt"`
}

// EntryLister lists metadata for archived entries.
type EntryLister interface {
	Entries(ctx context.Context) ([]*Entry, error)
}

// Ensure Archive implements ArchiveService at compile time.
var _ ArchiveService = (*Archive)(nil)

// Archive adapts a KeyValueStore to ArchiveService. Store failures are
// returned as *StoreError.
type Archive struct {
	kv KeyValueStore
}

// NewArchive returns an Archive backed by kv.
func NewArchive(kv KeyValueStore) *Archive {
	return &Archive{kv: kv}
}

// Has lists all keys and tests membership. The store offers no indexed
// existence check, so this is O(n) in the number of entries.
func (a *Archive) Has(ctx context.Context, key string) (bool, error) {
	keys, err := a.Keys(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(keys, key), nil
}

// Get returns the archived fragment for key.
func (a *Archive) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		return "", false, &StoreError{Op: "get", Err: err}
	}
	return value, ok, nil
}

// Put archives value under key.
func (a *Archive) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return Errorf(EINVALID, "archive key required")
	}
	if err := a.kv.Set(ctx, key, value); err != nil {
		return &StoreError{Op: "set", Err: err}
	}
	return nil
}

// Keys returns every archived key.
func (a *Archive) Keys(ctx context.Context) ([]string, error) {
	keys, err := a.kv.Keys(ctx)
	if err != nil {
		return nil, &StoreError{Op: "keys", Err: err}
	}
	return keys, nil
}
