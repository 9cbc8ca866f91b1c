package main_test

import (
	"context"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/mock"
)

// line lays out texts left to right from x0, 50 units apart.
func line(x0, y float64, texts ...string) []pricegrid.Token {
	tokens := make([]pricegrid.Token, len(texts))
	for i, text := range texts {
		x := x0 + float64(i)*50
		tokens[i] = pricegrid.Token{Text: text, X0: x, Y0: y, X1: x + 30, Y1: y + 8}
	}
	return tokens
}

// gridPage returns a title row, a width header and two drop rows.
func gridPage() []pricegrid.Token {
	tokens := line(50, 20, "Roller", "Blinds", "Group", "1")
	tokens = append(tokens, line(100, 60, "960", "1260", "1560", "1860", "2160", "2460")...)
	tokens = append(tokens, line(50, 80, "900", "$320", "$340", "$360", "$380", "$400", "$420")...)
	return append(tokens, line(50, 100, "1200", "$350", "$370", "$390", "$410", "$430", "$1,450")...)
}

func source(pages map[int][]pricegrid.Token) *mock.TokenSource {
	return &mock.TokenSource{
		PageCountFn: func() int { return len(pages) },
		TokensFn: func(_ context.Context, page int) ([]pricegrid.Token, error) {
			tokens, ok := pages[page]
			if !ok {
				return nil, pricegrid.Errorf(pricegrid.ESOURCE, "page %d out of range", page)
			}
			return tokens, nil
		},
		CloseFn: func() error { return nil },
	}
}
