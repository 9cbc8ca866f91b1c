package pricegrid

import "context"

// Token is one fragment of rendered text and its bounding box on a page.
// Coordinates are top-down: Y0 is the top edge and grows toward the
// bottom of the page.
type Token struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

// TokenSource supplies positioned text for the pages of one document.
type TokenSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Tokens returns the tokens of a page in any order.
	// Pages are 0-based. Returns ESOURCE if the page cannot be read.
	Tokens(ctx context.Context, page int) ([]Token, error)

	// Close releases the underlying document.
	Close() error
}
