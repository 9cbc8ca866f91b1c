package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/mock"
	gridslog "github.com/fwojciec/pricegrid/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTokenSource_Tokens(t *testing.T) {
	t.Parallel()

	t.Run("logs page with token count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TokenSource{
			TokensFn: func(ctx context.Context, page int) ([]pricegrid.Token, error) {
				return []pricegrid.Token{{Text: "960"}, {Text: "1260"}}, nil
			},
		}

		src := gridslog.NewLoggingTokenSource(inner, logger)
		tokens, err := src.Tokens(context.Background(), 6)

		require.NoError(t, err)
		assert.Len(t, tokens, 2)
		output := buf.String()
		assert.Contains(t, output, "page tokens")
		assert.Contains(t, output, "page=6")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TokenSource{
			TokensFn: func(ctx context.Context, page int) ([]pricegrid.Token, error) {
				return nil, pricegrid.Errorf(pricegrid.ESOURCE, "page %d out of range", page)
			},
		}

		src := gridslog.NewLoggingTokenSource(inner, logger)
		_, err := src.Tokens(context.Background(), 99)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "page=99")
		assert.Contains(t, output, "page 99 out of range")
	})
}

func TestLoggingTokenSource_Delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closeCalled := false
	inner := &mock.TokenSource{
		PageCountFn: func() int { return 12 },
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	src := gridslog.NewLoggingTokenSource(inner, logger)

	assert.Equal(t, 12, src.PageCount())
	require.NoError(t, src.Close())
	assert.True(t, closeCalled)
	assert.Empty(t, buf.String())
}
