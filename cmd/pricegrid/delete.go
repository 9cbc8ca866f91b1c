package main

import (
	"fmt"

	"github.com/fwojciec/pricegrid"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pricegrid.Errorf(pricegrid.EINVALID, "use --force to confirm deletion")
	}

	err := deps.Runs.DeleteRun(deps.Ctx, c.ID)
	if pricegrid.ErrorCode(err) == pricegrid.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pricegrid runs' to see recorded runs.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
