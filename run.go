package pricegrid

import (
	"context"
	"time"
)

// Run is a recorded extraction run. Only statuses are recorded; grid
// values are handed to a GridWriter and never stored with the run.
type Run struct {
	ID         string         `json:"id"`
	Catalog    string         `json:"catalog"`
	Source     string         `json:"source"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Entries    []*EntryResult `json:"entries"`
}

// NewRun creates a run record from a report.
func NewRun(report *Report) *Run {
	return &Run{
		Catalog:    report.Catalog,
		Source:     report.Source,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Entries:    report.Entries,
	}
}

// Summary counts the run's entries by status.
func (r *Run) Summary() Summary {
	return Summarize(r.Entries)
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	for _, e := range r.Entries {
		switch e.Status {
		case StatusExtracted, StatusSkipped, StatusFailed:
		default:
			return Errorf(EINVALID, "run entry %q has unknown status %q", e.Entry.Name, e.Status)
		}
	}
	return nil
}

// RunService represents a service for recording extraction runs.
type RunService interface {
	// CreateRun records a run and its entries.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its entries.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its entries.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	Catalog *string `json:"catalog"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
