package harvest_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lexarchive"
	"github.com/fwojciec/lexarchive/goquery"
	"github.com/fwojciec/lexarchive/harvest"
	"github.com/fwojciec/lexarchive/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvester_HarvestAll(t *testing.T) {
	t.Parallel()

	t.Run("continues past failures and counts outcomes", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := mock.NewMemStore()
		require.NoError(t, store.Set(ctx, "https://example.org/wiki/done", "<p>old</p>"))

		h := &harvest.Harvester{
			Archive: lexarchive.NewArchive(store),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					if url == "https://example.org/wiki/broken" {
						return "", &lexarchive.FetchError{URL: url, StatusCode: 404}
					}
					return latinPage, nil
				},
			},
			Extractor: goquery.NewSectionExtractor(goquery.WithPageCopy(false)),
		}

		var events []harvest.ProgressEvent
		urls := []string{
			"https://example.org/wiki/done",
			"https://example.org/wiki/broken",
			"https://example.org/wiki/new",
		}

		summary, err := h.HarvestAll(ctx, urls, func(event harvest.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Harvested)
		assert.Equal(t, 1, summary.Skipped)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, len("<p>A</p>"), summary.Bytes)
		require.Len(t, summary.Errors, 1)

		require.Len(t, events, 3)
		assert.Equal(t, "https://example.org/wiki/broken", events[1].URL)
		assert.Error(t, events[1].Error)
		assert.Equal(t, 3, events[2].Completed)
		assert.Equal(t, 3, events[2].Total)
		assert.Equal(t, harvest.OutcomeHarvested, events[2].Result.Outcome)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetchCalls := 0
		h := &harvest.Harvester{
			Archive:   lexarchive.NewArchive(mock.NewMemStore()),
			Fetcher:   staticFetcher(latinPage, &fetchCalls),
			Extractor: goquery.NewSectionExtractor(),
		}

		_, err := h.HarvestAll(ctx, []string{"https://example.org/wiki/a", "https://example.org/wiki/b"}, func(harvest.ProgressEvent) {
			cancel()
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, fetchCalls)
	})

	t.Run("accepts nil progress", func(t *testing.T) {
		t.Parallel()

		h := &harvest.Harvester{
			Archive:   lexarchive.NewArchive(mock.NewMemStore()),
			Fetcher:   staticFetcher(latinPage, nil),
			Extractor: goquery.NewSectionExtractor(),
		}

		summary, err := h.HarvestAll(context.Background(), []string{"https://example.org/wiki/a"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Harvested)
	})
}
