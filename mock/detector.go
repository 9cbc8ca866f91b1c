package mock

import "github.com/fwojciec/pricegrid"

var (
	_ pricegrid.HeaderDetector = (*HeaderDetector)(nil)
	_ pricegrid.RegionSplitter = (*RegionSplitter)(nil)
)

// HeaderDetector is a mock implementation of pricegrid.HeaderDetector.
type HeaderDetector struct {
	DetectHeaderFn func(rows []pricegrid.Row) (*pricegrid.Header, error)
}

func (d *HeaderDetector) DetectHeader(rows []pricegrid.Row) (*pricegrid.Header, error) {
	return d.DetectHeaderFn(rows)
}

// RegionSplitter is a mock implementation of pricegrid.RegionSplitter.
type RegionSplitter struct {
	SplitFn func(tokens []pricegrid.Token, splitX float64) (left, right []pricegrid.Token, dropped int)
}

func (s *RegionSplitter) Split(tokens []pricegrid.Token, splitX float64) (left, right []pricegrid.Token, dropped int) {
	return s.SplitFn(tokens, splitX)
}
