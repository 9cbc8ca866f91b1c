// Package excelize writes extracted grids to XLSX workbooks.
package excelize

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pricegrid"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements pricegrid.GridWriter at compile time.
var _ pricegrid.GridWriter = (*Writer)(nil)

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// Sheet names used for supplements.
const (
	ExtrasSheet = "Extras"
	RulesSheet  = "Surcharges & Rules"
)

// Writer writes each grid to its own sheet of one workbook.
type Writer struct {
	path string

	// Supplements are written after the grids, extras and rules each on
	// their own sheet. Empty lists get no sheet.
	Supplements *pricegrid.Supplements
}

// NewWriter creates a Writer that saves the workbook to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteGrids writes the grids in order, one sheet per grid. The first row
// of each sheet holds "Drop" and the width steps; each following row holds
// a drop and its prices, with absent prices left blank.
func (w *Writer) WriteGrids(ctx context.Context, grids []*pricegrid.NamedGrid) error {
	if len(grids) == 0 {
		return pricegrid.Errorf(pricegrid.EINVALID, "no grids to write")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	namer := newSheetNamer()
	defaultSheet := f.GetSheetName(0)

	for i, g := range grids {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := namer.claim(g.Name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, g.Grid); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
	}

	if s := w.Supplements; s != nil {
		if len(s.Extras) > 0 {
			if err := writeTable(f, namer.claim(ExtrasSheet), extrasTable(s.Extras)); err != nil {
				return err
			}
		}
		if len(s.Rules) > 0 {
			if err := writeTable(f, namer.claim(RulesSheet), rulesTable(s.Rules)); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, grid *pricegrid.GridTable) error {
	header := make([]any, 0, len(grid.WidthSteps)+1)
	header = append(header, "Drop")
	for _, w := range grid.WidthSteps {
		header = append(header, w)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range grid.Rows {
		cells := make([]any, 0, len(row.Prices)+1)
		cells = append(cells, row.Drop)
		for _, p := range row.Prices {
			if p == nil {
				cells = append(cells, nil)
				continue
			}
			cells = append(cells, *p)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

// writeTable adds a sheet holding rows, the first of which is the header.
func writeTable(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func extrasTable(extras []pricegrid.Extra) [][]any {
	rows := make([][]any, 0, len(extras)+1)
	rows = append(rows, []any{"Page", "Item", "Price", "Unit", "Raw"})
	for _, e := range extras {
		rows = append(rows, []any{e.Page, e.Item, e.Amount, e.Unit, e.Raw})
	}
	return rows
}

func rulesTable(rules []pricegrid.Rule) [][]any {
	rows := make([][]any, 0, len(rules)+1)
	rows = append(rows, []any{"Page", "Rule"})
	for _, r := range rules {
		rows = append(rows, []any{r.Page, r.Text})
	}
	return rows
}

// SheetNames returns a valid, unique sheet name for each grid. Characters
// Excel forbids are removed, names are clipped to 31 characters, and names
// that collide after clipping get a " (N)" suffix within the limit. Excel
// compares sheet names case-insensitively, and so does this function.
func SheetNames(grids []*pricegrid.NamedGrid) []string {
	namer := newSheetNamer()
	names := make([]string, len(grids))
	for i, g := range grids {
		names[i] = namer.claim(g.Name)
	}
	return names
}

// sheetNamer hands out unique sheet names within one workbook.
type sheetNamer struct {
	used map[string]struct{}
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]struct{})}
}

func (n *sheetNamer) claim(name string) string {
	base := sanitize(name)
	name = clip(base, maxSheetName)
	for i := 1; ; i++ {
		if _, ok := n.used[strings.ToLower(name)]; !ok {
			break
		}
		suffix := fmt.Sprintf(" (%d)", i)
		name = clip(base, maxSheetName-len(suffix)) + suffix
	}
	n.used[strings.ToLower(name)] = struct{}{}
	return name
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(strings.Trim(name, "'"))
	if name == "" {
		return "Grid"
	}
	return name
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
