package pricegrid_test

import (
	"testing"

	"github.com/fwojciec/pricegrid"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestGridRow_Price(t *testing.T) {
	t.Parallel()

	row := pricegrid.GridRow{Drop: 900, Prices: []*float64{ptr(320), nil}}

	v, ok := row.Price(0)
	assert.True(t, ok)
	assert.InDelta(t, 320.0, v, 1e-9)

	_, ok = row.Price(1)
	assert.False(t, ok, "nil price is absent")

	_, ok = row.Price(5)
	assert.False(t, ok, "missing column is absent")

	_, ok = row.Price(-1)
	assert.False(t, ok)
}

func TestGridTable_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		grid  pricegrid.GridTable
		valid bool
	}{
		{
			name:  "valid",
			grid:  pricegrid.GridTable{WidthSteps: []float64{960, 1260}, Rows: []pricegrid.GridRow{{Drop: 900, Prices: []*float64{ptr(1), nil}}}},
			valid: true,
		},
		{
			name:  "no rows",
			grid:  pricegrid.GridTable{WidthSteps: []float64{960}},
			valid: true,
		},
		{
			name:  "repeated widths",
			grid:  pricegrid.GridTable{WidthSteps: []float64{960, 960, 1260}},
			valid: true,
		},
		{
			name: "no widths",
			grid: pricegrid.GridTable{},
		},
		{
			name: "decreasing widths",
			grid: pricegrid.GridTable{WidthSteps: []float64{1260, 960}},
		},
		{
			name: "too many prices",
			grid: pricegrid.GridTable{WidthSteps: []float64{960}, Rows: []pricegrid.GridRow{{Drop: 900, Prices: []*float64{ptr(1), ptr(2)}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.grid.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, pricegrid.EINVALID, pricegrid.ErrorCode(err))
		})
	}
}
