// Package http provides an HTTP-based implementation of lexarchive.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/lexarchive"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = lexarchive.DefaultFetchTimeout

// Ensure Fetcher implements lexarchive.Fetcher at compile time.
var _ lexarchive.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup with a single HTTP GET. It does not retry
// and does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	relayPrefix string
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRelayPrefix routes requests through a relay by prepending prefix to
// every requested URL, e.g. "https://relay.example/" + "https://site/page".
func WithRelayPrefix(prefix string) Option {
	return func(f *Fetcher) {
		f.relayPrefix = prefix
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: lexarchive.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// RequestURL returns the URL actually requested for url.
func (f *Fetcher) RequestURL(url string) string {
	return f.relayPrefix + url
}

// Fetch retrieves the markup at url. Any failure, including a non-2xx
// status, is returned as *lexarchive.FetchError carrying the unprefixed url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.RequestURL(url), nil)
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &lexarchive.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
