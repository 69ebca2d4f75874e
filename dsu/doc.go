// Package dsu implements a fixed-universe disjoint set (union-find) in two
// strategies that compute identical partitions and differ only in cost.
//
// Strategies
//
//   - Naive: iterative Find without compression, Union hangs the root of x
//     under the root of y with no balancing. Tree height may grow to O(n),
//     so Find is O(n) worst case.
//
//   - Optimized: recursive Find with path compression (every visited slot is
//     re-pointed at the root) and union by rank (the lower-rank root goes
//     under the higher-rank one; on a tie the root of x wins and its rank
//     grows by one). Height stays O(log n) and a sequence of m operations
//     costs O(m·α(n)).
//
// Slot model
//
// Each of the n slots is in one of three explicit states: uninserted, root,
// or child. A slot leaves the uninserted state through MakeSet, normally
// called lazily by AddEdge the first time the element appears in an edge.
// The set is "connected" when every slot is inserted and exactly one set
// remains:
//
//	IsConnected() == (InsertedCount() == Len() && SetCount() == 1)
//
// Selecting a strategy
//
// Both types satisfy Set. Hot loops should be written generically over
// S Set (see package sweep) so the strategy is fixed once per experiment;
// New(strategy, n) returns the interface for callers that pick at runtime.
//
// Indices are not range-checked: passing x outside [0, Len()) panics like
// any slice access. Boundary checks belong to the caller (sweep validates
// every endpoint). A Set is not safe for concurrent use.
package dsu
