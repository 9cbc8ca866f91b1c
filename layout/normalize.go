package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/pricegrid"
)

// Normalizer turns price-like tokens ("$1,320.00") into numbers.
type Normalizer struct {
	replacer *strings.Replacer
}

// NewNormalizer returns a Normalizer that removes each of the strip
// symbols before parsing.
func NewNormalizer(strip []string) *Normalizer {
	pairs := make([]string, 0, 2*len(strip))
	for _, s := range strip {
		if s == "" {
			continue
		}
		pairs = append(pairs, s, "")
	}
	return &Normalizer{replacer: strings.NewReplacer(pairs...)}
}

// Parse returns the numeric value of text and whether it is a number.
// Text that is not a finite number after stripping, such as a footer or
// section title, reports false.
func (n *Normalizer) Parse(text string) (float64, bool) {
	s := strings.TrimSpace(n.replacer.Replace(text))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Numbers returns the numeric values of a row's tokens in order,
// discarding tokens that do not parse.
func (n *Normalizer) Numbers(row pricegrid.Row) []float64 {
	var values []float64
	for _, t := range row.Tokens {
		if v, ok := n.Parse(t.Text); ok {
			values = append(values, v)
		}
	}
	return values
}
