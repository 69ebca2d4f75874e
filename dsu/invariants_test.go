package dsu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// walkNaive returns the root reached from x and the number of hops.
func walkNaive(s *Naive, x int) (int, int) {
	hops := 0
	for s.slots[x].state == stateChild {
		x = s.slots[x].parent
		hops++
		if hops > len(s.slots) {
			return -1, hops
		}
	}
	return x, hops
}

func walkOptimized(s *Optimized, x int) (int, int) {
	hops := 0
	for s.slots[x].state == stateChild {
		x = s.slots[x].parent
		hops++
		if hops > len(s.slots) {
			return -1, hops
		}
	}
	return x, hops
}

// TestInvariants_RootReachable checks, after every mutation, that parent
// chains end at a root slot pointing at itself and that the counters match
// the slot states.
func TestInvariants_RootReachable(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const n = 80
	naive, _ := NewNaive(n)
	opt, _ := NewOptimized(n)

	for step := 0; step < 400; step++ {
		x, y := r.Intn(n), r.Intn(n)
		naive.AddEdge(x, y)
		opt.AddEdge(x, y)

		roots, inserted := 0, 0
		for i := 0; i < n; i++ {
			if naive.slots[i].state == stateUninserted {
				continue
			}
			inserted++
			root, _ := walkNaive(naive, i)
			require.GreaterOrEqual(t, root, 0, "cycle from %d", i)
			require.Equal(t, root, naive.slots[root].parent)
			if naive.slots[i].state == stateRoot {
				roots++
			}
		}
		require.Equal(t, inserted, naive.inserted)
		require.Equal(t, roots, naive.sets)

		roots, inserted = 0, 0
		for i := 0; i < n; i++ {
			if opt.slots[i].state == stateUninserted {
				continue
			}
			inserted++
			root, hops := walkOptimized(opt, i)
			require.GreaterOrEqual(t, root, 0, "cycle from %d", i)
			require.Equal(t, root, opt.slots[root].parent)
			require.LessOrEqual(t, hops, opt.slots[root].rank, "height bounded by rank")
			if opt.slots[i].state == stateRoot {
				roots++
			}
		}
		require.Equal(t, inserted, opt.inserted)
		require.Equal(t, roots, opt.sets)
	}
}

// TestOptimized_PathCompression: after Find every visited slot points at the root.
func TestOptimized_PathCompression(t *testing.T) {
	s, _ := NewOptimized(4)
	for i := 0; i < 4; i++ {
		s.MakeSet(i)
	}
	// Hand-build the chain 0 -> 1 -> 2 -> 3 that union by rank would never produce.
	s.slots[0] = rankedSlot{parent: 1, state: stateChild}
	s.slots[1] = rankedSlot{parent: 2, state: stateChild}
	s.slots[2] = rankedSlot{parent: 3, state: stateChild}
	s.slots[3] = rankedSlot{parent: 3, rank: 3, state: stateRoot}

	require.Equal(t, 3, s.Find(0))
	for i := 0; i < 3; i++ {
		require.Equal(t, 3, s.slots[i].parent, "slot %d", i)
	}
}
