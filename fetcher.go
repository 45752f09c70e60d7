package lexarchive

import "context"

// Fetcher retrieves raw markup for a URL.
type Fetcher interface {
	// Fetch issues a single request for url and returns the response body.
	// Failures are reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
