// Package slog provides logging decorators for pricegrid services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pricegrid"
)

// Ensure LoggingTokenSource implements pricegrid.TokenSource.
var _ pricegrid.TokenSource = (*LoggingTokenSource)(nil)

// LoggingTokenSource wraps a TokenSource with debug logging.
type LoggingTokenSource struct {
	next   pricegrid.TokenSource
	logger *slog.Logger
}

// NewLoggingTokenSource creates a new LoggingTokenSource.
func NewLoggingTokenSource(next pricegrid.TokenSource, logger *slog.Logger) *LoggingTokenSource {
	return &LoggingTokenSource{next: next, logger: logger}
}

// PageCount delegates to the wrapped source.
func (s *LoggingTokenSource) PageCount() int {
	return s.next.PageCount()
}

// Tokens delegates to the wrapped source and logs the page load.
func (s *LoggingTokenSource) Tokens(ctx context.Context, page int) (tokens []pricegrid.Token, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page tokens",
			"page", page,
			"count", len(tokens),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Tokens(ctx, page)
}

// Close delegates to the wrapped source.
func (s *LoggingTokenSource) Close() error {
	return s.next.Close()
}
