package bloom

import (
	"context"

	"github.com/fwojciec/lexarchive"
)

// DefaultFalsePositiveRate is the filter error rate used by NewIndex.
const DefaultFalsePositiveRate = 0.01

// minCapacity keeps small archives from producing a saturated filter once a
// batch starts adding keys.
const minCapacity = 1000

// Ensure Index implements lexarchive.ArchiveService at compile time.
var _ lexarchive.ArchiveService = (*Index)(nil)

// Index wraps an ArchiveService with an in-memory Bloom filter of its keys.
// Has answers definite misses from the filter and confirms possible hits
// against the wrapped service, so a false positive never skips a harvest.
//
// Index is not safe for concurrent use.
type Index struct {
	next   lexarchive.ArchiveService
	filter *Filter
}

// NewIndex loads every key from next into a new filter.
func NewIndex(ctx context.Context, next lexarchive.ArchiveService) (*Index, error) {
	keys, err := next.Keys(ctx)
	if err != nil {
		return nil, err
	}

	capacity := uint(2 * len(keys))
	if capacity < minCapacity {
		capacity = minCapacity
	}

	filter := NewFilter(capacity, DefaultFalsePositiveRate)
	for _, key := range keys {
		filter.Add(key)
	}

	return &Index{next: next, filter: filter}, nil
}

// Has reports whether key is archived.
func (idx *Index) Has(ctx context.Context, key string) (bool, error) {
	if !idx.filter.Test(key) {
		return false, nil
	}
	return idx.next.Has(ctx, key)
}

// Get delegates to the wrapped service.
func (idx *Index) Get(ctx context.Context, key string) (string, bool, error) {
	return idx.next.Get(ctx, key)
}

// Put stores value and records key in the filter on success.
func (idx *Index) Put(ctx context.Context, key, value string) error {
	if err := idx.next.Put(ctx, key, value); err != nil {
		return err
	}
	idx.filter.Add(key)
	return nil
}

// Keys delegates to the wrapped service.
func (idx *Index) Keys(ctx context.Context) ([]string, error) {
	return idx.next.Keys(ctx)
}
