package layout

import "github.com/fwojciec/pricegrid"

var _ pricegrid.RegionSplitter = Splitter{}

// Splitter divides a page at a vertical line. A token belongs to the left
// region when it ends before the line and to the right region when it
// starts after it. Tokens touching or straddling the line belong to
// neither region and are only counted.
type Splitter struct{}

// Split implements pricegrid.RegionSplitter.
func (Splitter) Split(tokens []pricegrid.Token, splitX float64) (left, right []pricegrid.Token, dropped int) {
	for _, t := range tokens {
		switch {
		case t.X1 < splitX:
			left = append(left, t)
		case t.X0 > splitX:
			right = append(right, t)
		default:
			dropped++
		}
	}
	return left, right, dropped
}
