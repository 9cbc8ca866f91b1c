package mock

import (
	"context"

	"github.com/fwojciec/pricegrid"
)

var _ pricegrid.GridWriter = (*GridWriter)(nil)

// GridWriter is a mock implementation of pricegrid.GridWriter.
type GridWriter struct {
	WriteGridsFn func(ctx context.Context, grids []*pricegrid.NamedGrid) error
}

func (w *GridWriter) WriteGrids(ctx context.Context, grids []*pricegrid.NamedGrid) error {
	return w.WriteGridsFn(ctx, grids)
}
