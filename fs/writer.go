// Package fs writes extracted grids to CSV files.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/pricegrid"
)

// Ensure Writer implements pricegrid.GridWriter at compile time.
var _ pricegrid.GridWriter = (*Writer)(nil)

// Writer writes each grid as a CSV file in a directory.
//
// Files are staged in a sibling ".tmp" directory and moved into place only
// after every grid has been written, so a failed write leaves the target
// directory untouched.
type Writer struct {
	dir string

	// Supplements are written next to the grids as extras.csv and
	// rules.csv. Empty lists get no file.
	Supplements *pricegrid.Supplements
}

// NewWriter creates a new Writer that writes to dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) tempDir() string {
	return filepath.Clean(w.dir) + ".tmp"
}

// WriteGrids writes one <slug>.csv file per grid, followed by the
// supplement files.
func (w *Writer) WriteGrids(ctx context.Context, grids []*pricegrid.NamedGrid) error {
	if len(grids) == 0 {
		return pricegrid.Errorf(pricegrid.EINVALID, "no grids to write")
	}

	tmp := w.tempDir()
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	namer := newFileNamer()
	var files []string
	for _, g := range grids {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := namer.claim(g.Name)
		if err := writeFile(filepath.Join(tmp, name), func(out io.Writer) error { return Encode(out, g.Grid) }); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		files = append(files, name)
	}

	if s := w.Supplements; s != nil {
		if len(s.Extras) > 0 {
			name := namer.claim("extras")
			if err := writeFile(filepath.Join(tmp, name), func(out io.Writer) error { return EncodeExtras(out, s.Extras) }); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			files = append(files, name)
		}
		if len(s.Rules) > 0 {
			name := namer.claim("rules")
			if err := writeFile(filepath.Join(tmp, name), func(out io.Writer) error { return EncodeRules(out, s.Rules) }); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			files = append(files, name)
		}
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	for _, name := range files {
		if err := os.Rename(filepath.Join(tmp, name), filepath.Join(w.dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes grid as CSV: a header row of "Drop" and the width steps,
// then one row per drop. Absent prices are empty cells.
func Encode(w io.Writer, grid *pricegrid.GridTable) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(grid.WidthSteps)+1)
	header = append(header, "Drop")
	for _, width := range grid.WidthSteps {
		header = append(header, formatNumber(width))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range grid.Rows {
		record := make([]string, 0, len(grid.WidthSteps)+1)
		record = append(record, formatNumber(row.Drop))
		for i := range grid.WidthSteps {
			if v, ok := row.Price(i); ok {
				record = append(record, formatNumber(v))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// EncodeExtras writes extras as CSV with a Page, Item, Price, Unit and Raw
// column.
func EncodeExtras(w io.Writer, extras []pricegrid.Extra) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Page", "Item", "Price", "Unit", "Raw"}); err != nil {
		return err
	}
	for _, e := range extras {
		if err := cw.Write([]string{strconv.Itoa(e.Page), e.Item, formatNumber(e.Amount), e.Unit, e.Raw}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeRules writes rules as CSV with a Page and Rule column.
func EncodeRules(w io.Writer, rules []pricegrid.Rule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Page", "Rule"}); err != nil {
		return err
	}
	for _, r := range rules {
		if err := cw.Write([]string{strconv.Itoa(r.Page), r.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Slug converts a grid name to a file name stem: lower-case letters and
// digits, with every other run of characters collapsed to "-".
// Example: "Roller Blinds (Group 1)" → roller-blinds-group-1
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "grid"
	}
	return b.String()
}

// FileNames returns a unique CSV file name for each grid. Slugs that
// collide get a "-N" suffix starting at 1.
func FileNames(grids []*pricegrid.NamedGrid) []string {
	namer := newFileNamer()
	names := make([]string, len(grids))
	for i, g := range grids {
		names[i] = namer.claim(g.Name)
	}
	return names
}

// fileNamer hands out unique file names within one directory.
type fileNamer struct {
	used map[string]struct{}
}

func newFileNamer() *fileNamer {
	return &fileNamer{used: make(map[string]struct{})}
}

func (n *fileNamer) claim(name string) string {
	slug := Slug(name)
	name = slug
	for i := 1; ; i++ {
		if _, ok := n.used[name]; !ok {
			break
		}
		name = slug + "-" + strconv.Itoa(i)
	}
	n.used[name] = struct{}{}
	return name + ".csv"
}
