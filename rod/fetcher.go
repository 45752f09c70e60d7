// Package rod provides a headless Chrome implementation of lexarchive.Fetcher
// for pages whose markup is built by JavaScript.
package rod

import (
	"context"

	"github.com/fwojciec/lexarchive"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements lexarchive.Fetcher at compile time.
var _ lexarchive.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in headless Chrome and returns the resulting markup.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *browser
	relayPrefix string
	maxPages    int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRelayPrefix prepends prefix to every navigated URL.
func WithRelayPrefix(prefix string) Option {
	return func(f *Fetcher) {
		f.relayPrefix = prefix
	}
}

// WithMaxPages sets how many pages are rendered before Chrome is relaunched.
// Defaults to DefaultMaxPages.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches headless Chrome and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}

	b, err := newBrowser(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.browser = b

	return f, nil
}

// Fetch navigates to url, waits for the load event and returns the rendered
// HTML. A failed navigation or a non-2xx document response is returned as
// *lexarchive.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}

	b, err := f.browser.acquire()
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}
	defer page.Close()

	page = page.Context(ctx)

	var status int
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(f.relayPrefix + url); err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}
	waitResponse()

	if status != 0 && (status < 200 || status > 299) {
		return "", &lexarchive.FetchError{URL: url, StatusCode: status}
	}

	if err := page.WaitLoad(); err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.close()
}
