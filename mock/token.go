package mock

import (
	"context"

	"github.com/fwojciec/pricegrid"
)

var _ pricegrid.TokenSource = (*TokenSource)(nil)

// TokenSource is a mock implementation of pricegrid.TokenSource.
type TokenSource struct {
	PageCountFn func() int
	TokensFn    func(ctx context.Context, page int) ([]pricegrid.Token, error)
	CloseFn     func() error
}

func (s *TokenSource) PageCount() int {
	return s.PageCountFn()
}

func (s *TokenSource) Tokens(ctx context.Context, page int) ([]pricegrid.Token, error) {
	return s.TokensFn(ctx, page)
}

func (s *TokenSource) Close() error {
	return s.CloseFn()
}
