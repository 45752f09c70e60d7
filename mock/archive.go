package mock

import (
	"context"

	"github.com/fwojciec/lexarchive"
)

var _ lexarchive.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of lexarchive.ArchiveService.
type ArchiveService struct {
	HasFn  func(ctx context.Context, key string) (bool, error)
	GetFn  func(ctx context.Context, key string) (string, bool, error)
	PutFn  func(ctx context.Context, key, value string) error
	KeysFn func(ctx context.Context) ([]string, error)
}

func (s *ArchiveService) Has(ctx context.Context, key string) (bool, error) {
	return s.HasFn(ctx, key)
}

func (s *ArchiveService) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *ArchiveService) Put(ctx context.Context, key, value string) error {
	return s.PutFn(ctx, key, value)
}

func (s *ArchiveService) Keys(ctx context.Context) ([]string, error) {
	return s.KeysFn(ctx)
}

var _ lexarchive.EntryLister = (*EntryLister)(nil)

// EntryLister is a mock implementation of lexarchive.EntryLister.
type EntryLister struct {
	EntriesFn func(ctx context.Context) ([]*lexarchive.Entry, error)
}

func (l *EntryLister) Entries(ctx context.Context) ([]*lexarchive.Entry, error) {
	return l.EntriesFn(ctx)
}
