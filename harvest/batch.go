package harvest

import (
	"context"
)

// ProgressEvent reports the result of one URL in a batch.
type ProgressEvent struct {
	Completed int
	Total     int
	URL       string
	Result    *Result
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Summary holds the outcome of a batch.
type Summary struct {
	Harvested int
	Skipped   int
	Failed    int
	Bytes     int

	// Errors holds per-URL failures in input order.
	Errors []error
}

// HarvestAll calls EnsureHarvested for each URL in turn. A failed URL does
// not stop the batch; its error is reported through progress and collected
// in the summary. The returned error is non-nil only if ctx is done.
func (h *Harvester) HarvestAll(ctx context.Context, urls []string, progress ProgressFunc) (*Summary, error) {
	summary := &Summary{}

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := h.EnsureHarvested(ctx, url)
		switch {
		case err != nil:
			summary.Failed++
			summary.Errors = append(summary.Errors, err)
		case result.Outcome == OutcomeSkipped:
			summary.Skipped++
		default:
			summary.Harvested++
			summary.Bytes += result.Bytes
		}

		if progress != nil {
			progress(ProgressEvent{
				Completed: i + 1,
				Total:     len(urls),
				URL:       url,
				Result:    result,
				Error:     err,
			})
		}
	}

	return summary, nil
}
