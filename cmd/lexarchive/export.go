package main

import (
	"fmt"

	"github.com/fwojciec/lexarchive"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.Entries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
		return err
	}

	format := lexarchive.ExportHTML
	if c.Markdown {
		format = lexarchive.ExportMarkdown
	}

	for _, e := range entries {
		content, ok, err := deps.Archive.Get(deps.Ctx, e.Key)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
			return err
		}
		if !ok {
			continue
		}

		if c.Markdown {
			if content, err = deps.Converter.Convert(content); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.Key, lexarchive.ErrorMessage(err))
				return err
			}
		}

		path, err := deps.Writer.WriteFragment(deps.Ctx, e, content, format)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.Key, lexarchive.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(entries), c.Dir)
	return nil
}
