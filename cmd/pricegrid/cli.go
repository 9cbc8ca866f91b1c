package main

import (
	"context"
	"io"

	"github.com/fwojciec/pricegrid"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Catalogs pricegrid.CatalogLoader
	Runs     pricegrid.RunService

	// OpenSource opens the document a catalog reads from.
	OpenSource func(path string) (pricegrid.TokenSource, error)

	// Writers receive the report's supplements to write alongside the grids.
	NewXLSXWriter func(path string, supplements *pricegrid.Supplements) pricegrid.GridWriter
	NewCSVWriter  func(dir string, supplements *pricegrid.Supplements) pricegrid.GridWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB    string `name:"db" env:"PRICEGRID_DB" help:"Run history database path (default ~/.pricegrid/pricegrid.db)"`
	Debug bool   `help:"Log page loads, writes and history access to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract the grids named by a catalog"`
	Rows    RowsCmd    `cmd:"" help:"Show the clustered rows of a page"`
	Runs    RunsCmd    `cmd:"" help:"List recorded runs"`
	Show    ShowCmd    `cmd:"" help:"Show the entries of a recorded run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a recorded run"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Catalog     string `arg:"" help:"Catalog file (YAML)"`
	XLSX        string `name:"xlsx" help:"Write grids to this workbook, one sheet per grid"`
	CSVDir      string `name:"csv-dir" help:"Write grids as CSV files into this directory"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent page loads"`
	NoHistory   bool   `help:"Do not record the run"`
}

// RowsCmd is the "rows" subcommand.
type RowsCmd struct {
	PDF              string  `arg:"" name:"pdf" help:"PDF file"`
	Page             int     `arg:"" help:"Page index (0-based)"`
	Granularity      float64 `short:"g" default:"1" help:"Row quantization step"`
	Region           string  `short:"r" default:"full" enum:"full,left,right" help:"Page region (full, left, right)"`
	SplitX           float64 `name:"split-x" help:"Horizontal split coordinate for left/right regions"`
	MinHeaderColumns int     `name:"min-header-columns" default:"6" help:"Integer tokens required in a width header"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Catalog string `help:"Only show runs of this catalog"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" name:"run-id" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" name:"run-id" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
