package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/pricegrid"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pricegrid.RunService = (*RunService)(nil)

// RunService implements pricegrid.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a run and its entries in one transaction.
func (s *RunService) CreateRun(ctx context.Context, run *pricegrid.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.FinishedAt.IsZero() {
		run.FinishedAt = run.StartedAt
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, catalog, source, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Catalog, run.Source, formatTime(run.StartedAt), formatTime(run.FinishedAt)); err != nil {
		return err
	}

	for i, e := range run.Entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_entries (run_id, position, page, region, entry_name, name, status, row_count, dropped, fingerprint, err)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, e.Entry.Page, e.Entry.Region.String(), e.Entry.Name, e.Name, string(e.Status),
			e.Rows, e.Dropped, e.Fingerprint, e.Err); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run and its entries.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*pricegrid.Run, error) {
	runs, err := s.FindRuns(ctx, pricegrid.RunFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, pricegrid.Errorf(pricegrid.ENOTFOUND, "run not found")
	}

	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, most recent first. Entries
// are loaded for every returned run.
func (s *RunService) FindRuns(ctx context.Context, filter pricegrid.RunFilter) ([]*pricegrid.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, catalog, source, started_at, finished_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Catalog != nil {
		query.WriteString(" AND catalog = ?")
		args = append(args, *filter.Catalog)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")

	if filter.Offset > 0 && filter.Limit <= 0 {
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*pricegrid.Run
	for rows.Next() {
		var run pricegrid.Run
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Catalog, &run.Source, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, run := range runs {
		if run.Entries, err = s.findEntries(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) findEntries(ctx context.Context, runID string) ([]*pricegrid.EntryResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page, region, entry_name, name, status, row_count, dropped, fingerprint, err
		FROM run_entries
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*pricegrid.EntryResult{}
	for rows.Next() {
		var e pricegrid.EntryResult
		var region, status string

		if err := rows.Scan(&e.Entry.Page, &region, &e.Entry.Name, &e.Name, &status,
			&e.Rows, &e.Dropped, &e.Fingerprint, &e.Err); err != nil {
			return nil, err
		}

		if e.Entry.Region, err = pricegrid.ParseRegion(region); err != nil {
			return nil, err
		}
		e.Status = pricegrid.Status(status)

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// DeleteRun permanently removes a run and its entries.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return pricegrid.Errorf(pricegrid.ENOTFOUND, "run not found")
	}

	return nil
}
