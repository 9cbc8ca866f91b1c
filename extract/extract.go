// Package extract runs catalogs through the layout engine.
// It loads page tokens, reconstructs one grid per catalog entry, assigns
// unique names, and reports a status for every entry. Extras and rules are
// read from the catalog's supplement pages.
package extract

import (
	"context"
	"time"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/layout"
	"golang.org/x/sync/errgroup"
)

// Extractor orchestrates grid extraction for a catalog.
type Extractor struct {
	Source pricegrid.TokenSource

	// Detector replaces the default header detector when set.
	Detector pricegrid.HeaderDetector

	// Concurrency bounds how many pages are loaded at once. Grids are
	// always built and named in catalog order. Values below 1 mean 1.
	Concurrency int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Result    *pricegrid.EntryResult
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressEntry
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// page holds the outcome of loading one page.
type page struct {
	tokens []pricegrid.Token
	err    error
}

// Run extracts every entry of the catalog.
//
// A failure to load a page or find a header affects only the entries that
// read it; every entry gets a result. Run itself returns an error only for
// an invalid catalog or a canceled context.
func (x *Extractor) Run(ctx context.Context, catalog *pricegrid.Catalog, progress ProgressFunc) (*pricegrid.Report, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	engine, err := layout.NewEngine(catalog.Layout)
	if err != nil {
		return nil, err
	}
	if x.Detector != nil {
		engine.Detector = x.Detector
	}

	report := &pricegrid.Report{
		Catalog:   catalog.Name,
		Source:    catalog.Source,
		StartedAt: time.Now().UTC(),
		Entries:   make([]*pricegrid.EntryResult, 0, len(catalog.Entries)),
		Grids:     []*pricegrid.NamedGrid{},
	}

	total := len(catalog.Entries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	pages, err := x.loadPages(ctx, pageNumbers(catalog))
	if err != nil {
		return nil, err
	}

	names := NewNames()
	for i, entry := range catalog.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, grid := process(engine, entry, pages[entry.Page])
		if grid != nil {
			result.Name = names.Claim(entry.Name)
			report.Grids = append(report.Grids, &pricegrid.NamedGrid{
				Name:  result.Name,
				Entry: entry,
				Grid:  grid,
			})
		}
		report.Entries = append(report.Entries, result)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressEntry,
				Completed: i + 1,
				Total:     total,
				Result:    result,
			})
		}
	}

	readSupplements(engine, catalog, pages, report)

	report.FinishedAt = time.Now().UTC()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return report, nil
}

// loadPages fetches the tokens of each page once.
func (x *Extractor) loadPages(ctx context.Context, order []int) (map[int]*page, error) {
	pages := make(map[int]*page, len(order))
	for _, n := range order {
		pages[n] = &page{}
	}

	concurrency := x.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, n := range order {
		p := pages[n]
		g.Go(func() error {
			p.tokens, p.err = x.Source.Tokens(gctx, n)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// pageNumbers returns every page the catalog reads, in first-use order.
func pageNumbers(catalog *pricegrid.Catalog) []int {
	all := make([]int, 0, len(catalog.Entries)+len(catalog.ExtrasPages)+len(catalog.RulesPages))
	for _, e := range catalog.Entries {
		all = append(all, e.Page)
	}
	all = append(all, catalog.ExtrasPages...)
	all = append(all, catalog.RulesPages...)
	return distinct(all)
}

// readSupplements collects the extras and rules of the catalog's
// supplement pages into the report. A page that failed to load is
// recorded once in the report's page errors.
func readSupplements(engine *layout.Engine, catalog *pricegrid.Catalog, pages map[int]*page, report *pricegrid.Report) {
	failed := make(map[int]struct{})
	usable := func(n int) bool {
		p := pages[n]
		if p.err == nil {
			return true
		}
		if _, ok := failed[n]; !ok {
			failed[n] = struct{}{}
			report.PageErrors = append(report.PageErrors, pricegrid.PageError{Page: n, Err: errorText(p.err)})
		}
		return false
	}

	for _, n := range distinct(catalog.ExtrasPages) {
		if !usable(n) {
			continue
		}
		for _, e := range engine.Extras(pages[n].tokens) {
			e.Page = n
			report.Supplements.Extras = append(report.Supplements.Extras, e)
		}
	}
	for _, n := range distinct(catalog.RulesPages) {
		if !usable(n) {
			continue
		}
		for _, r := range engine.Rules(pages[n].tokens) {
			r.Page = n
			report.Supplements.Rules = append(report.Supplements.Rules, r)
		}
	}
}

func distinct(pages []int) []int {
	out := make([]int, 0, len(pages))
	seen := make(map[int]struct{}, len(pages))
	for _, n := range pages {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// process reconstructs the grid for one entry. The grid is nil unless the
// entry was extracted.
func process(engine *layout.Engine, entry pricegrid.CatalogEntry, p *page) (*pricegrid.EntryResult, *pricegrid.GridTable) {
	result := &pricegrid.EntryResult{Entry: entry}

	if p.err != nil {
		result.Status = pricegrid.StatusFailed
		result.Err = errorText(p.err)
		return result, nil
	}

	tokens, dropped, err := engine.Region(p.tokens, entry.Region)
	if err != nil {
		result.Status = pricegrid.StatusFailed
		result.Err = errorText(err)
		return result, nil
	}
	result.Dropped = dropped

	grid, err := engine.Extract(tokens)
	switch {
	case pricegrid.ErrorCode(err) == pricegrid.ENOHEADER:
		result.Status = pricegrid.StatusSkipped
		result.Err = pricegrid.ErrorMessage(err)
		return result, nil
	case err != nil:
		result.Status = pricegrid.StatusFailed
		result.Err = errorText(err)
		return result, nil
	}

	result.Status = pricegrid.StatusExtracted
	result.Rows = len(grid.Rows)
	result.Fingerprint = Fingerprint(grid)
	return result, grid
}

// errorText returns the application message for domain errors and the
// full error text for anything else.
func errorText(err error) string {
	if pricegrid.ErrorCode(err) == pricegrid.EINTERNAL {
		return err.Error()
	}
	return pricegrid.ErrorMessage(err)
}
