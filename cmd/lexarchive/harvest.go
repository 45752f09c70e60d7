package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/lexarchive"
	"github.com/fwojciec/lexarchive/harvest"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		return c.runOne(deps, c.URLs[0])
	}

	summary, err := deps.Harvester.HarvestAll(deps.Ctx, c.URLs, func(e harvest.ProgressEvent) {
		if e.Error != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, describeError(e.URL, e.Error))
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, describeResult(e.Result))
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Harvested %d, skipped %d, failed %d (%d bytes stored)\n",
		summary.Harvested, summary.Skipped, summary.Failed, summary.Bytes)

	if summary.Failed > 0 {
		return lexarchive.Errorf(lexarchive.EINTERNAL, "%d of %d URLs failed", summary.Failed, len(c.URLs))
	}
	return nil
}

func (c *HarvestCmd) runOne(deps *Dependencies, url string) error {
	result, err := deps.Harvester.EnsureHarvested(deps.Ctx, url)
	if err != nil {
		fmt.Fprintln(deps.Stderr, describeError(url, err))
		return err
	}
	fmt.Fprintln(deps.Stdout, describeResult(result))
	return nil
}

func describeResult(r *harvest.Result) string {
	if r.Outcome == harvest.OutcomeSkipped {
		return fmt.Sprintf("skipped %s", r.URL)
	}
	return fmt.Sprintf("harvested %s (%d bytes)", r.URL, r.Bytes)
}

// describeError renders a harvest failure with its kind and URL.
func describeError(url string, err error) string {
	var (
		fetchErr  *lexarchive.FetchError
		anchorErr *lexarchive.AnchorNotFoundError
		storeErr  *lexarchive.StoreError
	)
	switch {
	case errors.As(err, &fetchErr):
		return "error: " + fetchErr.Error()
	case errors.As(err, &anchorErr):
		return "error: " + anchorErr.Error()
	case errors.As(err, &storeErr):
		return fmt.Sprintf("error: store %s for %s: %v", storeErr.Op, url, storeErr.Err)
	default:
		return fmt.Sprintf("error: %s: %s", url, lexarchive.ErrorMessage(err))
	}
}
