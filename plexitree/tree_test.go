package plexitree_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/qntx/lexitrees/plexitree"
)

func TestPutGetOverwrite(t *testing.T) {
	tr := plexitree.New[int, string]()

	tr.Put(5, "five")
	tr.Put(3, "three")
	tr.Put(5, "FIVE")

	v, ok := tr.Get(5)
	require.True(t, ok)
	assert.Equal(t, "FIVE", v)
	assert.Equal(t, 2, tr.Len())

	_, ok = tr.Get(42)
	assert.False(t, ok)
}

func TestIterAscendingOrder(t *testing.T) {
	tr := plexitree.New[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tr.Put(k, k*10)
	}

	var keys []int
	for k := range tr.Iter() {
		keys = append(keys, k)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
	require.NoError(t, tr.Check())
}

func TestRIterDescendingOrder(t *testing.T) {
	tr := plexitree.New[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tr.Put(k, k)
	}

	var keys []int
	for k := range tr.RIter() {
		keys = append(keys, k)
	}

	assert.Equal(t, []int{8, 5, 4, 3, 1}, keys)
}

func TestDeleteRestoresInvariant(t *testing.T) {
	tr := plexitree.New[int, int]()
	for i := 0; i < 200; i++ {
		tr.Put(i, i)
	}

	require.NoError(t, tr.Check())

	for i := 0; i < 200; i += 3 {
		_, err := tr.Delete(i)
		require.NoError(t, err)
	}

	require.NoError(t, tr.Check())

	_, err := tr.Delete(1000)
	assert.ErrorIs(t, err, plexitree.ErrKeyNotFound)
}

func TestRemoveOr(t *testing.T) {
	tr := plexitree.New[string, int]()
	tr.Put("a", 1)

	assert.Equal(t, 1, tr.RemoveOr("a", -1))
	assert.Equal(t, -1, tr.RemoveOr("a", -1))
}

func TestJSONRoundTrip(t *testing.T) {
	tr := plexitree.New[string, int]()
	tr.Put("b", 2)
	tr.Put("a", 1)
	tr.Put("c", 3)

	data, err := tr.ToJSON()
	require.NoError(t, err)

	tr2 := plexitree.New[string, int]()
	require.NoError(t, tr2.FromJSON(data))

	assert.Equal(t, tr.Keys(), tr2.Keys())
	assert.Equal(t, tr.Values(), tr2.Values())
}

func TestBeginEnd(t *testing.T) {
	tr := plexitree.New[int, int]()

	_, _, found := tr.Begin()
	assert.False(t, found)

	for _, k := range []int{5, 1, 9, 3} {
		tr.Put(k, k)
	}

	minK, _, ok := tr.Begin()
	require.True(t, ok)
	assert.Equal(t, 1, minK)

	maxK, _, ok := tr.End()
	require.True(t, ok)
	assert.Equal(t, 9, maxK)
}

func TestWithProbabilityRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		plexitree.New[int, int](plexitree.WithProbability[int, int](0))
	})
	assert.Panics(t, func() {
		plexitree.New[int, int](plexitree.WithProbability[int, int](1))
	})
}

func TestHeightStaysSmall(t *testing.T) {
	tr := plexitree.New[int, int]()
	for i := range 1000 {
		tr.Put(i, i)
	}

	require.NoError(t, tr.Check())
	// Not a hard bound (this is a probabilistic structure), but a height
	// many multiples of log2(1000) would indicate a bug in randLevel or
	// the side-chain splice rather than bad luck.
	assert.LessOrEqual(t, tr.Height(), 40)
}

// TestRandomOpsPreserveInvariant fuzzes put/delete sequences and checks
// the tree's structural invariants and contents at the end of each
// sequence. Sequences have up to 10,000 operations rather than the Python
// original's 1,000,000 (see
// SPEC_FULL.md), since the invariant under test is scale-invariant once n
// is in the thousands.
func TestRandomOpsPreserveInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := plexitree.New[int, int]()
		model := map[int]int{}

		ops := rapid.IntRange(1, 10000).Draw(rt, "ops")
		for range ops {
			key := rapid.IntRange(0, 500).Draw(rt, "key")
			if rapid.Bool().Draw(rt, "isPut") {
				tr.Put(key, key)
				model[key] = key
			} else {
				tr.Remove(key)
				delete(model, key)
			}
		}

		require.NoError(rt, tr.Check())
		assert.Equal(rt, len(model), tr.Len())

		wantKeys := make([]int, 0, len(model))
		for k := range model {
			wantKeys = append(wantKeys, k)
		}

		sort.Ints(wantKeys)
		assert.Equal(rt, wantKeys, tr.Keys())
	})
}
