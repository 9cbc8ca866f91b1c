package layout_test

import "github.com/fwojciec/pricegrid"

// tok returns a token at x with a fixed width of 30 units.
func tok(text string, x, y float64) pricegrid.Token {
	return pricegrid.Token{Text: text, X0: x, Y0: y, X1: x + 30, Y1: y + 8}
}

// line returns tokens laid out left to right on the same y, 50 units apart.
func line(y float64, texts ...string) []pricegrid.Token {
	tokens := make([]pricegrid.Token, len(texts))
	for i, text := range texts {
		tokens[i] = tok(text, 50+float64(i)*50, y)
	}
	return tokens
}

func f(v float64) *float64 {
	return &v
}
