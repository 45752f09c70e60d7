// Package harvest provides the harvest orchestration. It decides whether a
// page needs archiving and, if so, runs fetch, extraction and storage in
// order.
package harvest

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/lexarchive"
)

// Outcome describes what EnsureHarvested did for a URL.
type Outcome string

// Harvest outcomes.
const (
	// OutcomeSkipped means the URL was already archived.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeHarvested means the page was fetched, extracted and stored.
	OutcomeHarvested Outcome = "harvested"
)

// Harvester orchestrates single-page harvests.
type Harvester struct {
	Archive   lexarchive.ArchiveService
	Fetcher   lexarchive.Fetcher
	Extractor lexarchive.SectionExtractor

	// FetchTimeout bounds each fetch. Defaults to lexarchive.DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// Result holds the outcome of a single harvest.
type Result struct {
	URL     string
	Outcome Outcome
	Bytes   int
}

// EnsureHarvested archives url unless an entry already exists.
//
// The archived state is read from the store on every call. When absent, the
// page is fetched, its section extracted and the fragment stored under url,
// strictly in that order. Any failure returns before the store is written,
// so a later call retries the full harvest.
//
// Errors are *lexarchive.StoreError, *lexarchive.FetchError or
// *lexarchive.AnchorNotFoundError.
func (h *Harvester) EnsureHarvested(ctx context.Context, url string) (*Result, error) {
	archived, err := h.Archive.Has(ctx, url)
	if err != nil {
		return nil, err
	}
	if archived {
		return &Result{URL: url, Outcome: OutcomeSkipped}, nil
	}

	html, err := h.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	fragment, err := h.Extractor.ExtractSection(html)
	if err != nil {
		var anchorErr *lexarchive.AnchorNotFoundError
		if errors.As(err, &anchorErr) {
			anchorErr.URL = url
		}
		return nil, err
	}

	if err := h.Archive.Put(ctx, url, fragment); err != nil {
		return nil, err
	}

	return &Result{URL: url, Outcome: OutcomeHarvested, Bytes: len(fragment)}, nil
}

// fetch runs a single bounded fetch and normalises failures to FetchError.
func (h *Harvester) fetch(ctx context.Context, url string) (string, error) {
	timeout := h.FetchTimeout
	if timeout <= 0 {
		timeout = lexarchive.DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	html, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		var fetchErr *lexarchive.FetchError
		if errors.As(err, &fetchErr) {
			return "", err
		}
		return "", &lexarchive.FetchError{URL: url, Err: err}
	}
	return html, nil
}
