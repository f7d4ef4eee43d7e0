package main

import (
	"fmt"

	"github.com/fwojciec/popscrape"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return popscrape.Errorf(popscrape.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Contents.DeleteContent(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted content %q and its articles\n", c.ID)
	return nil
}
