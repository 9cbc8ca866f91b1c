package pricegrid

import "context"

// GridTable is a reconstructed price matrix keyed by drop and width.
type GridTable struct {
	WidthSteps []float64 `json:"widthSteps"`
	Rows       []GridRow `json:"rows"`
}

// GridRow is one drop of a grid. Prices[i] is the price for WidthSteps[i];
// a nil entry means the source had no value for that column.
type GridRow struct {
	Drop   float64    `json:"drop"`
	Prices []*float64 `json:"prices"`
}

// Price returns the price at column i and whether it is present.
func (r GridRow) Price(i int) (float64, bool) {
	if i < 0 || i >= len(r.Prices) || r.Prices[i] == nil {
		return 0, false
	}
	return *r.Prices[i], true
}

// Validate returns an error if the grid breaks its structural invariants:
// width steps must be non-decreasing and no row may have more prices than
// there are width steps.
func (g *GridTable) Validate() error {
	if len(g.WidthSteps) == 0 {
		return Errorf(EINVALID, "grid width steps required")
	}
	for i := 1; i < len(g.WidthSteps); i++ {
		if g.WidthSteps[i] < g.WidthSteps[i-1] {
			return Errorf(EINVALID, "grid width steps must be non-decreasing")
		}
	}
	for _, row := range g.Rows {
		if len(row.Prices) > len(g.WidthSteps) {
			return Errorf(EINVALID, "grid row %v has %d prices for %d widths", row.Drop, len(row.Prices), len(g.WidthSteps))
		}
	}
	return nil
}

// NamedGrid is a grid produced for a catalog entry under its unique name.
type NamedGrid struct {
	Name  string       `json:"name"`
	Entry CatalogEntry `json:"entry"`
	Grid  *GridTable   `json:"grid"`
}

// GridWriter persists extracted grids, e.g. as a spreadsheet.
type GridWriter interface {
	WriteGrids(ctx context.Context, grids []*NamedGrid) error
}
