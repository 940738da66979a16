package seqops_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tollkit/seqops"
)

// asSet collapses permutations to a set; output order is unspecified.
func asSet(t *testing.T, perms [][]int) map[string]struct{} {
	t.Helper()
	set := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		key := fmt.Sprint(p)
		_, dup := set[key]
		require.False(t, dup, "duplicate permutation %v", p)
		set[key] = struct{}{}
	}
	return set
}

func TestUniquePermutations(t *testing.T) {
	t.Run("multiset with one duplicate pair", func(t *testing.T) {
		perms := seqops.UniquePermutations([]int{1, 1, 2})
		set := asSet(t, perms)
		require.Len(t, set, 3)
		assert.Contains(t, set, fmt.Sprint([]int{1, 1, 2}))
		assert.Contains(t, set, fmt.Sprint([]int{1, 2, 1}))
		assert.Contains(t, set, fmt.Sprint([]int{2, 1, 1}))
	})

	t.Run("all distinct elements", func(t *testing.T) {
		perms := seqops.UniquePermutations([]int{1, 2, 3})
		assert.Len(t, asSet(t, perms), 6)
	})

	t.Run("all equal elements", func(t *testing.T) {
		perms := seqops.UniquePermutations([]int{7, 7, 7})
		assert.Len(t, asSet(t, perms), 1)
	})

	t.Run("empty input has one empty permutation", func(t *testing.T) {
		perms := seqops.UniquePermutations(nil)
		require.Len(t, perms, 1)
		assert.Empty(t, perms[0])
	})

	t.Run("input is not mutated", func(t *testing.T) {
		nums := []int{3, 1, 2}
		seqops.UniquePermutations(nums)
		assert.Equal(t, []int{3, 1, 2}, nums)
	})
}
