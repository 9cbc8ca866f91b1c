package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pricegrid"
)

// Fingerprint returns a stable hash of the grid content. Identical grids
// have identical fingerprints.
func Fingerprint(grid *pricegrid.GridTable) string {
	var b strings.Builder
	writeFloats(&b, grid.WidthSteps)
	for _, row := range grid.Rows {
		b.WriteByte('\n')
		b.WriteString(strconv.FormatFloat(row.Drop, 'g', -1, 64))
		b.WriteByte(':')
		for i, p := range row.Prices {
			if i > 0 {
				b.WriteByte(',')
			}
			if p == nil {
				b.WriteByte('-')
				continue
			}
			b.WriteString(strconv.FormatFloat(*p, 'g', -1, 64))
		}
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}

func writeFloats(b *strings.Builder, values []float64) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// FormatSummary formats entry counts, e.g. "5 extracted, 1 skipped, 0 failed".
func FormatSummary(s pricegrid.Summary) string {
	return fmt.Sprintf("%d extracted, %d skipped, %d failed", s.Extracted, s.Skipped, s.Failed)
}

// FormatEntry formats one entry result as a single status line.
func FormatEntry(r *pricegrid.EntryResult) string {
	label := r.Entry.Name
	if r.Name != "" {
		label = r.Name
	}
	where := fmt.Sprintf("page %d", r.Entry.Page)
	if r.Entry.Region != pricegrid.RegionFull {
		where += " " + r.Entry.Region.String()
	}
	line := fmt.Sprintf("%s (%s): %s", label, where, r.String())
	if r.Dropped > 0 {
		line += fmt.Sprintf(" [%d boundary tokens dropped]", r.Dropped)
	}
	return line
}
