package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/lexarchive"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.Entries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries archived. Use 'lexarchive harvest' to add one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %d  %s  %s\n", e.Key, e.Size, e.ContentHash, e.StoredAt.Format(time.RFC3339))
	}

	return nil
}
