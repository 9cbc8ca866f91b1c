package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pricegrid"
	main "github.com/fwojciec/pricegrid/cmd/pricegrid"
	"github.com/fwojciec/pricegrid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedRun() *pricegrid.Run {
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &pricegrid.Run{
		ID:         "run-1",
		Catalog:    "rollers",
		Source:     "/prices/rollers.pdf",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		Entries: []*pricegrid.EntryResult{
			{Entry: pricegrid.CatalogEntry{Page: 6, Name: "Group 1"}, Name: "Group 1", Status: pricegrid.StatusExtracted, Rows: 12},
			{Entry: pricegrid.CatalogEntry{Page: 7, Region: pricegrid.RegionLeft, Name: "Group 2"}, Status: pricegrid.StatusSkipped, Dropped: 2},
		},
	}
}

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with summaries", func(t *testing.T) {
		t.Parallel()

		var gotFilter pricegrid.RunFilter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, filter pricegrid.RunFilter) ([]*pricegrid.Run, error) {
					gotFilter = filter
					return []*pricegrid.Run{recordedRun()}, nil
				},
			},
		}

		cmd := &main.RunsCmd{Catalog: "rollers", Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
		require.NotNil(t, gotFilter.Catalog)
		assert.Equal(t, "rollers", *gotFilter.Catalog)
		output := stdout.String()
		assert.Contains(t, output, "run-1")
		assert.Contains(t, output, "rollers")
		assert.Contains(t, output, "1 extracted, 1 skipped, 0 failed")
	})

	t.Run("shows hint when no runs recorded", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, filter pricegrid.RunFilter) ([]*pricegrid.Run, error) {
					assert.Nil(t, filter.Catalog)
					return nil, nil
				},
			},
		}

		cmd := &main.RunsCmd{Limit: 20}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded")
	})

	t.Run("returns storage error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, _ pricegrid.RunFilter) ([]*pricegrid.Run, error) {
					return nil, errors.New("database is locked")
				},
			},
		}

		err := (&main.RunsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}
