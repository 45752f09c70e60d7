package mock

import (
	"context"

	"github.com/fwojciec/lexarchive"
)

var _ lexarchive.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock lexarchive.Fetcher. Implementations it stands in for
// apply any relay prefix themselves and report failures as
// *lexarchive.FetchError keyed by the unprefixed URL, so FetchFn should
// return errors of that shape when a test exercises failure handling.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)

	// CloseFn may be nil when the code under test never closes the fetcher.
	CloseFn func() error
}

// Fetch calls FetchFn with the unprefixed page URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn, or returns nil if it is unset.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
