package pricegrid

// Row is a group of tokens sharing an approximate vertical position,
// ordered left to right.
type Row struct {
	// Y is the quantized vertical coordinate shared by the row's tokens.
	Y      float64
	Tokens []Token
}

// Texts returns the token texts of the row in order.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		texts[i] = t.Text
	}
	return texts
}

// Header is the detected width-header row of a grid.
type Header struct {
	// Index is the position of the header in the row sequence it was found in.
	Index int

	// WidthSteps are the column keys, non-decreasing.
	WidthSteps []float64
}

// HeaderDetector finds the width-header row in a sequence of rows.
// Implementations are interchangeable so that alternative strategies can
// replace the default without touching row clustering or grid building.
type HeaderDetector interface {
	// DetectHeader returns the header row, or ENOHEADER if none qualifies.
	DetectHeader(rows []Row) (*Header, error)
}

// RegionSplitter partitions the tokens of a page into left and right regions.
type RegionSplitter interface {
	// Split assigns tokens to the left or right of splitX. Tokens that
	// cannot be assigned unambiguously are dropped and counted.
	Split(tokens []Token, splitX float64) (left, right []Token, dropped int)
}
