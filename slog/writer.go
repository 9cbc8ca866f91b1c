package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pricegrid"
)

// Ensure LoggingGridWriter implements pricegrid.GridWriter.
var _ pricegrid.GridWriter = (*LoggingGridWriter)(nil)

// LoggingGridWriter wraps a GridWriter with debug logging.
type LoggingGridWriter struct {
	next   pricegrid.GridWriter
	name   string
	logger *slog.Logger
}

// NewLoggingGridWriter creates a new LoggingGridWriter. The name identifies
// the output in log lines, e.g. "xlsx" or "csv".
func NewLoggingGridWriter(next pricegrid.GridWriter, name string, logger *slog.Logger) *LoggingGridWriter {
	return &LoggingGridWriter{next: next, name: name, logger: logger}
}

// WriteGrids delegates to the wrapped writer and logs the write.
func (w *LoggingGridWriter) WriteGrids(ctx context.Context, grids []*pricegrid.NamedGrid) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write grids",
			"output", w.name,
			"grids", len(grids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteGrids(ctx, grids)
}
