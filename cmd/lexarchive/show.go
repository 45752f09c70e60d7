package main

import (
	"fmt"

	"github.com/fwojciec/lexarchive"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	fragment, ok, err := deps.Archive.Get(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
		return err
	}
	if !ok {
		err := lexarchive.Errorf(lexarchive.ENOTFOUND, "no archived entry for %q", c.URL)
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(fragment)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexarchive.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	fmt.Fprintln(deps.Stdout, fragment)
	return nil
}
