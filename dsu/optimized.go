// SPDX-License-Identifier: MIT
// Package: dsubench/dsu
//
// optimized.go: union by rank with recursive path compression.
//
// Complexity:
//   - MakeSet, IsConnected: O(1).
//   - Find, Union, AddEdge: O(α(n)) amortized, O(log n) worst case.
//   - Space: O(n) slots; recursion depth of Find bounded by the root's rank.

package dsu

type rankedSlot struct {
	parent int
	rank   int // upper bound on tree height; meaningful for roots only
	state  slotState
}

// Optimized is the disjoint set with path compression and union by rank.
type Optimized struct {
	slots    []rankedSlot
	inserted int
	sets     int
}

// NewOptimized returns an empty Optimized set over n elements.
func NewOptimized(n int) (*Optimized, error) {
	if err := checkSize("NewOptimized", n); err != nil {
		return nil, err
	}
	return &Optimized{slots: make([]rankedSlot, n)}, nil
}

// Len returns the universe size.
func (s *Optimized) Len() int { return len(s.slots) }

// InsertedCount returns how many elements have been inserted.
func (s *Optimized) InsertedCount() int { return s.inserted }

// SetCount returns the number of disjoint sets.
func (s *Optimized) SetCount() int { return s.sets }

// Contains reports whether x has been inserted.
func (s *Optimized) Contains(x int) bool { return s.slots[x].state != stateUninserted }

// IsConnected reports whether all elements form a single set.
func (s *Optimized) IsConnected() bool {
	return s.inserted == len(s.slots) && s.sets == 1
}

// MakeSet inserts x as a rank-0 root.
func (s *Optimized) MakeSet(x int) {
	s.slots[x] = rankedSlot{parent: x, state: stateRoot}
	s.inserted++
	s.sets++
}

// Find returns the root of x and re-points every slot on the way at it.
// Complexity: O(α(n)) amortized; recursion depth is bounded by the rank,
// i.e. O(log n).
func (s *Optimized) Find(x int) int {
	if s.slots[x].state != stateChild {
		return x
	}
	root := s.Find(s.slots[x].parent)
	s.slots[x].parent = root
	return root
}

// Union hangs the lower-rank root under the higher-rank one. On a tie the
// root of x becomes the parent and its rank grows by one.
// Complexity: O(α(n)) amortized.
func (s *Optimized) Union(x, y int) bool {
	// 1) Resolve both roots (compressing both paths).
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	// 2) Lower rank goes under higher; a tie keeps x's root on top.
	if s.slots[rx].rank < s.slots[ry].rank {
		s.slots[rx].parent = ry
		s.slots[rx].state = stateChild
	} else {
		s.slots[ry].parent = rx
		s.slots[ry].state = stateChild
		if s.slots[rx].rank == s.slots[ry].rank {
			s.slots[rx].rank++
		}
	}
	s.sets--
	return true
}

// AddEdge lazily inserts x and y, then unions them.
func (s *Optimized) AddEdge(x, y int) bool {
	if s.slots[x].state == stateUninserted {
		s.MakeSet(x)
	}
	if s.slots[y].state == stateUninserted {
		s.MakeSet(y)
	}
	return s.Union(x, y)
}
