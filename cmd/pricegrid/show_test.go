package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pricegrid"
	main "github.com/fwojciec/pricegrid/cmd/pricegrid"
	"github.com/fwojciec/pricegrid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints run entries and summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunByIDFn: func(_ context.Context, id string) (*pricegrid.Run, error) {
					assert.Equal(t, "run-1", id)
					return recordedRun(), nil
				},
			},
		}

		err := (&main.ShowCmd{ID: "run-1"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Catalog: rollers")
		assert.Contains(t, output, "Source:  /prices/rollers.pdf")
		assert.Contains(t, output, "(1.5s)")
		assert.Contains(t, output, "Group 1 (page 6): extracted (12 rows)")
		assert.Contains(t, output, "Group 2 (page 7 left): skipped: no header [2 boundary tokens dropped]")
		assert.Contains(t, output, "1 extracted, 1 skipped, 0 failed")
	})

	t.Run("returns not found with hint", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunByIDFn: func(_ context.Context, id string) (*pricegrid.Run, error) {
					return nil, pricegrid.Errorf(pricegrid.ENOTFOUND, "run not found")
				},
			},
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pricegrid.ENOTFOUND, pricegrid.ErrorCode(err))
		assert.Contains(t, stderr.String(), "pricegrid runs")
	})
}
