package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/extract"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if pricegrid.ErrorCode(err) == pricegrid.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pricegrid runs' to see recorded runs.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run:     %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "Catalog: %s\n", run.Catalog)
	fmt.Fprintf(deps.Stdout, "Source:  %s\n", run.Source)
	fmt.Fprintf(deps.Stdout, "Started: %s (%s)\n",
		run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	fmt.Fprintln(deps.Stdout)

	for _, e := range run.Entries {
		fmt.Fprintf(deps.Stdout, "  %s\n", extract.FormatEntry(e))
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, extract.FormatSummary(run.Summary()))

	return nil
}
