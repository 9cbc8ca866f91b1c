package extract

import (
	"context"

	"github.com/fwojciec/pricegrid"
)

var _ pricegrid.TokenSource = (*UnavailableSource)(nil)

// UnavailableSource stands in for a document that could not be opened.
// Every page load fails with Err, so a run still reports each entry as
// failed instead of aborting.
type UnavailableSource struct {
	Err error
}

// PageCount implements pricegrid.TokenSource. It always returns 0.
func (s *UnavailableSource) PageCount() int {
	return 0
}

// Tokens implements pricegrid.TokenSource. It returns Err, or an ESOURCE
// error when Err is nil.
func (s *UnavailableSource) Tokens(ctx context.Context, page int) ([]pricegrid.Token, error) {
	if s.Err == nil {
		return nil, pricegrid.Errorf(pricegrid.ESOURCE, "source unavailable")
	}
	return nil, s.Err
}

// Close implements pricegrid.TokenSource.
func (s *UnavailableSource) Close() error {
	return nil
}
