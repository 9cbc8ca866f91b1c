package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/layout"
)

// Run executes the rows command. It prints every clustered row of the
// page region and marks the row detected as the width header.
func (c *RowsCmd) Run(deps *Dependencies) error {
	region, err := pricegrid.ParseRegion(c.Region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	engine, err := layout.NewEngine(pricegrid.Layout{
		Granularity:      c.Granularity,
		MinHeaderColumns: c.MinHeaderColumns,
		SplitX:           c.SplitX,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	src, err := deps.OpenSource(c.PDF)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}
	defer src.Close()

	tokens, err := src.Tokens(deps.Ctx, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	tokens, dropped, err := engine.Region(tokens, region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	rows := engine.Rows(tokens)
	header, err := engine.Detector.DetectHeader(rows)
	if err != nil && pricegrid.ErrorCode(err) != pricegrid.ENOHEADER {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricegrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Page %d (%s): %d tokens, %d rows\n", c.Page, region, len(tokens), len(rows))
	if dropped > 0 {
		fmt.Fprintf(deps.Stdout, "%d boundary tokens dropped\n", dropped)
	}
	if header == nil {
		fmt.Fprintln(deps.Stdout, "No width header found")
	}

	for i, row := range rows {
		mark := " "
		if header != nil && header.Index == i {
			mark = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %4d  y=%-8g %s\n", mark, i, row.Y, strings.Join(row.Texts(), " | "))
	}

	return nil
}
