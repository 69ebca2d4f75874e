package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSet is a test helper that fails the test on construction error.
func newSet(t *testing.T, s dsu.Strategy, n int) dsu.Set {
	t.Helper()
	set, err := dsu.New(s, n)
	require.NoError(t, err)
	return set
}

// TestNew_Validation covers negative sizes and unknown tags.
func TestNew_Validation(t *testing.T) {
	for _, s := range dsu.Strategies {
		_, err := dsu.New(s, -1)
		assert.ErrorIs(t, err, dsu.ErrInvalidSize, s.String())
		assert.ErrorIs(t, err, dsubench.ErrInvalidArgument, s.String())
	}
	_, err := dsu.New(dsu.Strategy(99), 3)
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)

	_, err = dsu.NewNaive(-5)
	assert.ErrorIs(t, err, dsu.ErrInvalidSize)
	_, err = dsu.NewOptimized(-5)
	assert.ErrorIs(t, err, dsu.ErrInvalidSize)

	// Zero-size universe is legal and never connected.
	for _, s := range dsu.Strategies {
		set := newSet(t, s, 0)
		assert.Equal(t, 0, set.Len())
		assert.False(t, set.IsConnected())
	}
}

// TestFresh_NotConnected: nothing inserted is not "connected".
func TestFresh_NotConnected(t *testing.T) {
	for _, s := range dsu.Strategies {
		for _, n := range []int{1, 2, 17} {
			set := newSet(t, s, n)
			assert.Equal(t, 0, set.SetCount())
			assert.Equal(t, 0, set.InsertedCount())
			assert.False(t, set.IsConnected(), "%s n=%d", s, n)
			assert.False(t, set.Contains(0))
			assert.Equal(t, 0, set.Find(0), "uninserted element is its own root")
		}
	}
}

// TestChain_Connects unions (i, i+1) for every i and expects connectivity
// only after the last link.
func TestChain_Connects(t *testing.T) {
	for _, s := range dsu.Strategies {
		for _, n := range []int{2, 3, 10, 257} {
			set := newSet(t, s, n)
			for i := 0; i < n-1; i++ {
				assert.False(t, set.IsConnected(), "%s n=%d before link %d", s, n, i)
				assert.True(t, set.AddEdge(i, i+1))
			}
			assert.True(t, set.IsConnected(), "%s n=%d", s, n)
			assert.Equal(t, 1, set.SetCount())
			assert.Equal(t, n, set.InsertedCount())
		}
	}
}

// TestSingleElement: one element becomes connected once inserted.
func TestSingleElement(t *testing.T) {
	for _, s := range dsu.Strategies {
		set := newSet(t, s, 1)
		set.MakeSet(0)
		assert.True(t, set.IsConnected())
		assert.False(t, set.AddEdge(0, 0), "self-loop never merges")
		assert.Equal(t, 1, set.SetCount())
	}
}

// TestUnion_Idempotent: a repeated union leaves SetCount unchanged.
func TestUnion_Idempotent(t *testing.T) {
	for _, s := range dsu.Strategies {
		set := newSet(t, s, 5)
		for i := 0; i < 5; i++ {
			set.MakeSet(i)
		}
		assert.True(t, set.Union(1, 3))
		before := set.SetCount()
		assert.False(t, set.Union(1, 3))
		assert.False(t, set.Union(3, 1))
		assert.Equal(t, before, set.SetCount())
		assert.Equal(t, 4, before)
	}
}

// TestScenario_ThreeElements is the 3-element walk-through: 0-1, 1-2.
func TestScenario_ThreeElements(t *testing.T) {
	for _, s := range dsu.Strategies {
		set := newSet(t, s, 3)
		set.AddEdge(0, 1)
		assert.False(t, set.IsConnected())
		set.AddEdge(1, 2)
		assert.True(t, set.IsConnected(), s.String())
		assert.Equal(t, set.Find(0), set.Find(2))
	}
}

// TestNaive_UnionDirection: the root of x goes under the root of y.
func TestNaive_UnionDirection(t *testing.T) {
	set, err := dsu.NewNaive(3)
	require.NoError(t, err)
	set.AddEdge(0, 1)
	assert.Equal(t, 1, set.Find(0))
	set.AddEdge(1, 2)
	assert.Equal(t, 2, set.Find(0))
}

// TestOptimized_UnionByRank: ties go to x, lower rank goes under higher.
func TestOptimized_UnionByRank(t *testing.T) {
	set, err := dsu.NewOptimized(4)
	require.NoError(t, err)
	set.AddEdge(0, 1) // tie: 0 becomes root with rank 1
	assert.Equal(t, 0, set.Find(1))
	set.AddEdge(2, 0) // 2 has rank 0 < 1: goes under 0
	assert.Equal(t, 0, set.Find(2))
	set.AddEdge(3, 2)
	assert.Equal(t, 0, set.Find(3))
	assert.True(t, set.IsConnected())
}

// TestStrategies_Equivalent replays random edge sequences on both variants
// and compares connectivity and the induced partition after every step.
func TestStrategies_Equivalent(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(60)
		naive := newSet(t, dsu.StrategyNaive, n)
		opt := newSet(t, dsu.StrategyOptimized, n)
		steps := r.Intn(3 * n)
		for k := 0; k < steps; k++ {
			x, y := r.Intn(n), r.Intn(n)
			assert.Equal(t, naive.AddEdge(x, y), opt.AddEdge(x, y))
			require.Equal(t, naive.IsConnected(), opt.IsConnected(), "round %d step %d", round, k)
			require.Equal(t, naive.SetCount(), opt.SetCount())
			require.Equal(t, naive.InsertedCount(), opt.InsertedCount())
		}
		for a := 0; a < n; a++ {
			require.Equal(t, naive.Contains(a), opt.Contains(a))
			for b := a + 1; b < n; b++ {
				if !naive.Contains(a) || !naive.Contains(b) {
					continue
				}
				same := naive.Find(a) == naive.Find(b)
				require.Equal(t, same, opt.Find(a) == opt.Find(b), "pair (%d,%d)", a, b)
			}
		}
	}
}

// TestStrategies_Table: every tag below NumStrategies is listed and named.
func TestStrategies_Table(t *testing.T) {
	require.Len(t, dsu.Strategies, dsu.NumStrategies)
	for i, s := range dsu.Strategies {
		assert.Less(t, int(s), dsu.NumStrategies, "index %d", i)
		_, err := s.MarshalText()
		assert.NoError(t, err)
	}
	_, err := dsu.Strategy(dsu.NumStrategies).MarshalText()
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
}

func TestStrategy_Text(t *testing.T) {
	for _, s := range dsu.Strategies {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var back dsu.Strategy
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	s, err := dsu.ParseStrategy("  Naive ")
	require.NoError(t, err)
	assert.Equal(t, dsu.StrategyNaive, s)

	_, err = dsu.ParseStrategy("quick-union")
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
	_, err = dsu.Strategy(7).MarshalText()
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", dsu.Strategy(7).String())
}
