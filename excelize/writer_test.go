package excelize_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pricegrid"
	gridxlsx "github.com/fwojciec/pricegrid/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func price(v float64) *float64 {
	return &v
}

func named(name string) *pricegrid.NamedGrid {
	return &pricegrid.NamedGrid{
		Name: name,
		Grid: &pricegrid.GridTable{
			WidthSteps: []float64{960, 1260, 1560},
			Rows: []pricegrid.GridRow{
				{Drop: 900, Prices: []*float64{price(320), price(340), price(360)}},
				{Drop: 1200, Prices: []*float64{price(350.5), nil, nil}},
			},
		},
	}
}

func TestWriter_WriteGrids(t *testing.T) {
	t.Parallel()

	t.Run("writes one sheet per grid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "grids.xlsx")
		w := gridxlsx.NewWriter(path)

		err := w.WriteGrids(context.Background(), []*pricegrid.NamedGrid{
			named("Group 1"),
			named("Group 1 (1)"),
		})
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Group 1", "Group 1 (1)"}, f.GetSheetList())

		rows, err := f.GetRows("Group 1")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Drop", "960", "1260", "1560"}, rows[0])
		assert.Equal(t, []string{"900", "320", "340", "360"}, rows[1])
		assert.Equal(t, "1200", rows[2][0])
		assert.Equal(t, "350.5", rows[2][1])
		if len(rows[2]) > 2 {
			assert.Empty(t, rows[2][2])
		}
	})

	t.Run("writes supplement sheets after grids", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deep.xlsx")
		w := gridxlsx.NewWriter(path)
		w.Supplements = &pricegrid.Supplements{
			Extras: []pricegrid.Extra{
				{Page: 14, Item: "Chain guide", Price: "$12.50", Amount: 12.5, Unit: "each", Raw: "Chain guide $12.50 each"},
			},
			Rules: []pricegrid.Rule{{Page: 2, Text: "Add 10% for motorised blinds"}},
		}

		require.NoError(t, w.WriteGrids(context.Background(), []*pricegrid.NamedGrid{named("extras")}))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"extras", "Extras (1)", "Surcharges & Rules"}, f.GetSheetList())

		extras, err := f.GetRows("Extras (1)")
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Page", "Item", "Price", "Unit", "Raw"},
			{"14", "Chain guide", "12.5", "each", "Chain guide $12.50 each"},
		}, extras)

		rules, err := f.GetRows("Surcharges & Rules")
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Page", "Rule"},
			{"2", "Add 10% for motorised blinds"},
		}, rules)
	})

	t.Run("skips empty supplement lists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "grids.xlsx")
		w := gridxlsx.NewWriter(path)
		w.Supplements = &pricegrid.Supplements{Rules: []pricegrid.Rule{{Text: "Deduct 5% for trade orders"}}}

		require.NoError(t, w.WriteGrids(context.Background(), []*pricegrid.NamedGrid{named("Group 1")}))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Group 1", "Surcharges & Rules"}, f.GetSheetList())
	})

	t.Run("writes header for grid without rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.xlsx")
		g := &pricegrid.NamedGrid{Name: "Empty", Grid: &pricegrid.GridTable{WidthSteps: []float64{600, 900}}}

		require.NoError(t, gridxlsx.NewWriter(path).WriteGrids(context.Background(), []*pricegrid.NamedGrid{g}))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Empty")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Drop", "600", "900"}, rows[0])
	})

	t.Run("rejects empty grid list", func(t *testing.T) {
		t.Parallel()

		err := gridxlsx.NewWriter(filepath.Join(t.TempDir(), "none.xlsx")).WriteGrids(context.Background(), nil)

		assert.Equal(t, pricegrid.EINVALID, pricegrid.ErrorCode(err))
	})
}

func TestSheetNames(t *testing.T) {
	t.Parallel()

	t.Run("removes forbidden characters", func(t *testing.T) {
		t.Parallel()

		names := gridxlsx.SheetNames([]*pricegrid.NamedGrid{{Name: "Straight Drop [Crank/Strap]?"}})

		assert.Equal(t, []string{"Straight Drop CrankStrap"}, names)
	})

	t.Run("clips to 31 characters", func(t *testing.T) {
		t.Parallel()

		long := "Creative Straight Drop (Crank/Strap) Group 4"
		names := gridxlsx.SheetNames([]*pricegrid.NamedGrid{{Name: long}})

		assert.LessOrEqual(t, utf8.RuneCountInString(names[0]), 31)
		assert.True(t, strings.HasPrefix(names[0], "Creative Straight Drop"))
	})

	t.Run("resolves collisions created by clipping", func(t *testing.T) {
		t.Parallel()

		names := gridxlsx.SheetNames([]*pricegrid.NamedGrid{
			{Name: "Roller Blinds Blockout Group 1 P6"},
			{Name: "Roller Blinds Blockout Group 1 P7"},
		})

		assert.Equal(t, "Roller Blinds Blockout Group 1", names[0])
		assert.Equal(t, "Roller Blinds Blockout Grou (1)", names[1])
	})

	t.Run("treats names case-insensitively", func(t *testing.T) {
		t.Parallel()

		names := gridxlsx.SheetNames([]*pricegrid.NamedGrid{{Name: "Extras"}, {Name: "EXTRAS"}})

		assert.Equal(t, []string{"Extras", "EXTRAS (1)"}, names)
	})

	t.Run("names blank grids", func(t *testing.T) {
		t.Parallel()

		names := gridxlsx.SheetNames([]*pricegrid.NamedGrid{{Name: "//"}})

		assert.Equal(t, []string{"Grid"}, names)
	})
}
