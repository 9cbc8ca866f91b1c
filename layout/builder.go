package layout

import (
	"slices"

	"github.com/fwojciec/pricegrid"
)

// BuildGrid aligns the rows below a header into a grid.
//
// The first number of each row is its drop; the remaining numbers fill
// the width columns left to right. Short rows leave their trailing
// columns absent and numbers beyond the last column are ignored. Rows
// without any number are skipped. Every row passed in belongs to the same
// grid; there is no resynchronization on a second header.
func BuildGrid(header *pricegrid.Header, rows []pricegrid.Row, n *Normalizer) *pricegrid.GridTable {
	grid := &pricegrid.GridTable{
		WidthSteps: slices.Clone(header.WidthSteps),
		Rows:       []pricegrid.GridRow{},
	}

	for _, row := range rows {
		values := n.Numbers(row)
		if len(values) == 0 {
			continue
		}

		prices := make([]*float64, len(grid.WidthSteps))
		for i, v := range values[1:] {
			if i >= len(prices) {
				break
			}
			prices[i] = &v
		}

		grid.Rows = append(grid.Rows, pricegrid.GridRow{
			Drop:   values[0],
			Prices: prices,
		})
	}
	return grid
}
