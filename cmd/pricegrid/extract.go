package main

import (
	"fmt"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalogs.LoadCatalog(c.Catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	src, err := deps.OpenSource(catalog.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", pricegrid.ErrorMessage(err))
		src = &extract.UnavailableSource{Err: err}
	}
	defer src.Close()

	x := &extract.Extractor{
		Source:      src,
		Concurrency: c.Concurrency,
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d entries from %s\n", event.Total, catalog.Source)
		case extract.ProgressEntry:
			fmt.Fprintf(deps.Stdout, "  %s\n", extract.FormatEntry(event.Result))
		case extract.ProgressFinished:
		}
	}

	report, err := x.Run(deps.Ctx, catalog, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", extract.FormatSummary(report.Summary()))
	for _, pe := range report.PageErrors {
		fmt.Fprintf(deps.Stderr, "warning: page %d: %s\n", pe.Page, pe.Err)
	}
	if !report.Supplements.Empty() {
		fmt.Fprintf(deps.Stdout, "Found %d extras and %d rules\n", len(report.Supplements.Extras), len(report.Supplements.Rules))
	}

	if err := c.write(deps, report); err != nil {
		return err
	}

	if c.NoHistory || deps.Runs == nil {
		return nil
	}

	run := pricegrid.NewRun(report)
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: recording run: %s\n", pricegrid.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Recorded run %s\n", run.ID)

	return nil
}

// write hands the extracted grids to each requested output.
func (c *ExtractCmd) write(deps *Dependencies, report *pricegrid.Report) error {
	if c.XLSX == "" && c.CSVDir == "" {
		return nil
	}
	if len(report.Grids) == 0 {
		fmt.Fprintln(deps.Stderr, "No grids extracted; nothing written.")
		return nil
	}

	if c.XLSX != "" {
		if err := deps.NewXLSXWriter(c.XLSX, &report.Supplements).WriteGrids(deps.Ctx, report.Grids); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", c.XLSX, pricegrid.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d grids to %s\n", len(report.Grids), c.XLSX)
	}

	if c.CSVDir != "" {
		if err := deps.NewCSVWriter(c.CSVDir, &report.Supplements).WriteGrids(deps.Ctx, report.Grids); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", c.CSVDir, pricegrid.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d grids to %s\n", len(report.Grids), c.CSVDir)
	}

	return nil
}
