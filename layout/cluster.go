package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/fwojciec/pricegrid"
)

// quantizeEpsilon absorbs float drift such as 12.3/0.1 = 122.99999999999999.
const quantizeEpsilon = 1e-9

// ClusterRows groups tokens into rows by their quantized top coordinate.
// Rows are ordered by ascending y; tokens within a row by ascending x, with
// ties kept in input order. A non-positive granularity yields no rows.
func ClusterRows(tokens []pricegrid.Token, granularity float64) []pricegrid.Row {
	if len(tokens) == 0 || granularity <= 0 {
		return nil
	}

	buckets := make(map[int64][]pricegrid.Token)
	var keys []int64
	for _, t := range tokens {
		k := quantize(t.Y0, granularity)
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], t)
	}
	slices.Sort(keys)

	rows := make([]pricegrid.Row, 0, len(keys))
	for _, k := range keys {
		row := buckets[k]
		slices.SortStableFunc(row, func(a, b pricegrid.Token) int {
			return cmp.Compare(a.X0, b.X0)
		})
		rows = append(rows, pricegrid.Row{
			Y:      float64(k) * granularity,
			Tokens: row,
		})
	}
	return rows
}

func quantize(y, granularity float64) int64 {
	return int64(math.Floor(y/granularity + quantizeEpsilon))
}
