// SPDX-License-Identifier: MIT
// Package: dsubench/dsu
//
// naive.go: quick-union without balancing or compression.
//
// Complexity:
//   - MakeSet, IsConnected: O(1).
//   - Find, Union, AddEdge: O(h), h = tree height, up to O(n) on a chain.
//   - Space: O(n) slots.

package dsu

type naiveSlot struct {
	parent int
	state  slotState
}

// Naive is the unbalanced, uncompressed disjoint set.
type Naive struct {
	slots    []naiveSlot
	inserted int
	sets     int
}

// NewNaive returns an empty Naive set over n elements.
func NewNaive(n int) (*Naive, error) {
	if err := checkSize("NewNaive", n); err != nil {
		return nil, err
	}
	return &Naive{slots: make([]naiveSlot, n)}, nil
}

// Len returns the universe size.
func (s *Naive) Len() int { return len(s.slots) }

// InsertedCount returns how many elements have been inserted.
func (s *Naive) InsertedCount() int { return s.inserted }

// SetCount returns the number of disjoint sets.
func (s *Naive) SetCount() int { return s.sets }

// Contains reports whether x has been inserted.
func (s *Naive) Contains(x int) bool { return s.slots[x].state != stateUninserted }

// IsConnected reports whether all elements form a single set.
func (s *Naive) IsConnected() bool {
	return s.inserted == len(s.slots) && s.sets == 1
}

// MakeSet inserts x as its own root. Calling it twice for the same x
// corrupts the counters; AddEdge guards against that.
func (s *Naive) MakeSet(x int) {
	s.slots[x] = naiveSlot{parent: x, state: stateRoot}
	s.inserted++
	s.sets++
}

// Find follows parent links until it reaches a root. No compression.
// Complexity: O(h).
func (s *Naive) Find(x int) int {
	for s.slots[x].state == stateChild {
		x = s.slots[x].parent
	}
	return x
}

// Union attaches the root of x under the root of y.
// Complexity: O(h), dominated by the two Finds.
func (s *Naive) Union(x, y int) bool {
	// 1) Resolve both roots; equal roots mean nothing to merge.
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	// 2) No balancing: x's tree always goes under y's.
	s.slots[rx] = naiveSlot{parent: ry, state: stateChild}
	s.sets--
	return true
}

// AddEdge lazily inserts x and y, then unions them.
func (s *Naive) AddEdge(x, y int) bool {
	if s.slots[x].state == stateUninserted {
		s.MakeSet(x)
	}
	if s.slots[y].state == stateUninserted {
		s.MakeSet(y)
	}
	return s.Union(x, y)
}
