package layout_test

import (
	"testing"

	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterRows(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, layout.ClusterRows(nil, 1.0))
	})

	t.Run("returns nil for non-positive granularity", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, layout.ClusterRows(line(10, "a"), 0))
	})

	t.Run("orders rows by y and tokens by x", func(t *testing.T) {
		t.Parallel()

		tokens := []pricegrid.Token{
			tok("c", 300, 40.2),
			tok("b", 200, 10.7),
			tok("d", 100, 40.9),
			tok("a", 100, 10.1),
		}

		rows := layout.ClusterRows(tokens, 1.0)

		require.Len(t, rows, 2)
		assert.Equal(t, []string{"a", "b"}, rows[0].Texts())
		assert.Equal(t, []string{"d", "c"}, rows[1].Texts())
		assert.InDelta(t, 10.0, rows[0].Y, 1e-9)
		assert.InDelta(t, 40.0, rows[1].Y, 1e-9)
	})

	t.Run("keeps input order for tokens with equal x", func(t *testing.T) {
		t.Parallel()

		tokens := []pricegrid.Token{
			tok("first", 100, 5),
			tok("second", 100, 5),
			tok("third", 100, 5),
		}

		rows := layout.ClusterRows(tokens, 1.0)

		require.Len(t, rows, 1)
		assert.Equal(t, []string{"first", "second", "third"}, rows[0].Texts())
	})

	t.Run("fine granularity separates close lines", func(t *testing.T) {
		t.Parallel()

		tokens := []pricegrid.Token{
			tok("upper", 100, 12.3),
			tok("lower", 100, 12.5),
		}

		assert.Len(t, layout.ClusterRows(tokens, 1.0), 1)
		assert.Len(t, layout.ClusterRows(tokens, 0.1), 2)
	})

	t.Run("fine granularity tolerates float drift", func(t *testing.T) {
		t.Parallel()

		tokens := []pricegrid.Token{
			tok("a", 100, 12.3),
			tok("b", 200, 12.3),
		}

		rows := layout.ClusterRows(tokens, 0.1)

		require.Len(t, rows, 1)
		assert.InDelta(t, 12.3, rows[0].Y, 1e-6)
	})

	t.Run("rows are sorted for arbitrary input order", func(t *testing.T) {
		t.Parallel()

		var tokens []pricegrid.Token
		for i := 20; i > 0; i-- {
			tokens = append(tokens, tok("x", float64(i*37%200), float64(i*13%50)))
		}

		rows := layout.ClusterRows(tokens, 1.0)

		for i := 1; i < len(rows); i++ {
			assert.Less(t, rows[i-1].Y, rows[i].Y)
		}
		for _, row := range rows {
			for j := 1; j < len(row.Tokens); j++ {
				assert.LessOrEqual(t, row.Tokens[j-1].X0, row.Tokens[j].X0)
			}
		}
	})
}
