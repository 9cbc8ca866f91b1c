package layout

import "github.com/fwojciec/pricegrid"

// Engine reconstructs grids for one layout.
type Engine struct {
	Layout   pricegrid.Layout
	Detector pricegrid.HeaderDetector
	Splitter pricegrid.RegionSplitter

	normalizer *Normalizer
}

// NewEngine returns an engine for the layout with the default splitter and
// header detector. Returns EINVALID if the layout is invalid.
func NewEngine(layout pricegrid.Layout) (*Engine, error) {
	layout = layout.WithDefaults()
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		Layout:     layout,
		Detector:   &MonotonicDetector{MinColumns: layout.MinHeaderColumns},
		Splitter:   Splitter{},
		normalizer: NewNormalizer(layout.Strip),
	}, nil
}

// Region returns the tokens of the requested region and the number of
// tokens dropped for straddling the split line. The full region returns
// tokens unchanged.
func (e *Engine) Region(tokens []pricegrid.Token, region pricegrid.Region) ([]pricegrid.Token, int, error) {
	switch region {
	case pricegrid.RegionFull:
		return tokens, 0, nil
	case pricegrid.RegionLeft, pricegrid.RegionRight:
	default:
		return nil, 0, pricegrid.Errorf(pricegrid.EINVALID, "invalid region %d", int(region))
	}

	if e.Layout.SplitX <= 0 {
		return nil, 0, pricegrid.Errorf(pricegrid.EINVALID, "%s region requires a split x", region)
	}

	left, right, dropped := e.Splitter.Split(tokens, e.Layout.SplitX)
	if region == pricegrid.RegionLeft {
		return left, dropped, nil
	}
	return right, dropped, nil
}

// Rows clusters tokens into rows using the layout granularity.
func (e *Engine) Rows(tokens []pricegrid.Token) []pricegrid.Row {
	return ClusterRows(tokens, e.Layout.Granularity)
}

// Extract reconstructs the grid held by tokens.
// Returns ENOHEADER if no width header is found.
func (e *Engine) Extract(tokens []pricegrid.Token) (*pricegrid.GridTable, error) {
	rows := e.Rows(tokens)

	header, err := e.Detector.DetectHeader(rows)
	if err != nil {
		return nil, err
	}
	if header.Index < 0 || header.Index >= len(rows) {
		return nil, pricegrid.Errorf(pricegrid.EINTERNAL, "header index %d out of range for %d rows", header.Index, len(rows))
	}

	grid := BuildGrid(header, rows[header.Index+1:], e.normalizer)
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Extras returns the priced add-on lines held by tokens.
func (e *Engine) Extras(tokens []pricegrid.Token) []pricegrid.Extra {
	return Extras(e.Rows(tokens), e.normalizer)
}

// Rules returns the surcharge and rule lines held by tokens.
func (e *Engine) Rules(tokens []pricegrid.Token) []pricegrid.Rule {
	return Rules(e.Rows(tokens))
}
