package extract_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/pricegrid/extract"
	"github.com/stretchr/testify/assert"
)

func TestNames_Claim(t *testing.T) {
	t.Parallel()

	t.Run("returns unused names unchanged", func(t *testing.T) {
		t.Parallel()

		n := extract.NewNames()

		assert.Equal(t, "Group 1", n.Claim("Group 1"))
		assert.Equal(t, "Group 2", n.Claim("Group 2"))
	})

	t.Run("counts up from one", func(t *testing.T) {
		t.Parallel()

		n := extract.NewNames()

		assert.Equal(t, "Group 1", n.Claim("Group 1"))
		assert.Equal(t, "Group 1 (1)", n.Claim("Group 1"))
		assert.Equal(t, "Group 1 (2)", n.Claim("Group 1"))
	})

	t.Run("skips suffixes already taken", func(t *testing.T) {
		t.Parallel()

		n := extract.NewNames()

		n.Claim("A (1)")
		n.Claim("A")

		assert.Equal(t, "A (2)", n.Claim("A"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		n := extract.NewNames()
		results := make([]string, 50)

		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = n.Claim("Group")
			}()
		}
		wg.Wait()

		seen := make(map[string]bool)
		for _, r := range results {
			assert.False(t, seen[r], "duplicate name %q", r)
			seen[r] = true
		}
		assert.True(t, seen["Group"])
		assert.True(t, seen[fmt.Sprintf("Group (%d)", len(results)-1)])
	})
}
