package layout

import (
	"strconv"

	"github.com/fwojciec/pricegrid"
)

var _ pricegrid.HeaderDetector = (*MonotonicDetector)(nil)

// MonotonicDetector declares the first row holding at least MinColumns
// integer tokens in non-decreasing order to be the width header.
//
// Scanning stops at the first match. Drop rows below the header restart
// at a small value followed by prices, so they are never reached.
type MonotonicDetector struct {
	MinColumns int
}

// DetectHeader implements pricegrid.HeaderDetector.
func (d *MonotonicDetector) DetectHeader(rows []pricegrid.Row) (*pricegrid.Header, error) {
	minColumns := d.MinColumns
	if minColumns <= 0 {
		minColumns = pricegrid.DefaultMinHeaderColumns
	}

	for i, row := range rows {
		steps := integerValues(row)
		if len(steps) < minColumns {
			continue
		}
		if !nonDecreasing(steps) {
			continue
		}
		return &pricegrid.Header{Index: i, WidthSteps: steps}, nil
	}
	return nil, pricegrid.Errorf(pricegrid.ENOHEADER, "no width header among %d rows", len(rows))
}

// integerValues returns the values of the row's tokens that consist only
// of ASCII digits. Other tokens, such as labels or units, are ignored.
func integerValues(row pricegrid.Row) []float64 {
	var values []float64
	for _, t := range row.Tokens {
		if !isDigits(t.Text) {
			continue
		}
		n, err := strconv.ParseUint(t.Text, 10, 64)
		if err != nil {
			continue
		}
		values = append(values, float64(n))
	}
	return values
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func nonDecreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
