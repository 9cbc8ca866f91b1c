package main

import (
	"fmt"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/extract"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := pricegrid.RunFilter{Limit: c.Limit}
	if c.Catalog != "" {
		filter.Catalog = &c.Catalog
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'pricegrid extract' to record one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"), r.Catalog, extract.FormatSummary(r.Summary()))
	}

	return nil
}
