package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pricegrid"
)

// Ensure LoggingRunService implements pricegrid.RunService.
var _ pricegrid.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with debug logging.
type LoggingRunService struct {
	next   pricegrid.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next pricegrid.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the new run.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *pricegrid.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"id", run.ID,
			"catalog", run.Catalog,
			"entries", len(run.Entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*pricegrid.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service and logs the query.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter pricegrid.RunFilter) (runs []*pricegrid.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// DeleteRun delegates to the wrapped service and logs the deletion.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
