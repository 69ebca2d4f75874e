// Package sweep runs a Kruskal-style connectivity sweep over a bucketed edge
// list and stops as soon as every vertex belongs to one set.
//
// What & Why
//
//   - Buckets are processed in ascending index order; the index doubles as a
//     coarse weight, standing in for a comparison sort. Inside a bucket edges
//     keep their insertion order, so ties break arbitrarily.
//   - An edge whose endpoints are both inserted and already share a root is a
//     cycle edge and is skipped. Any other edge goes through AddEdge.
//   - After every AddEdge the set is asked IsConnected(); once it answers
//     true the sweep returns and the remaining edges are never visited.
//
// The accepted edges form a spanning forest over the prefix needed to reach
// full connectivity. It is a minimum spanning tree only up to the bucket
// granularity.
//
// Entry points
//
//   - Sweep(list, n, opts...) builds a fresh disjoint set of the strategy set
//     by WithStrategy (optimized by default) and runs the sweep.
//   - Run[S dsu.Set](set, list, opts...) runs over a caller-supplied set; the
//     type parameter fixes the strategy for the whole inner loop.
//
// Error Conditions
//
//   - ErrNilList    : list == nil (wraps dsubench.ErrInvalidArgument).
//   - dsu.ErrInvalidSize : n < 0.
//   - ErrOutOfRange : an edge has an endpoint outside [0,n) (wraps
//     dsubench.ErrOutOfRange). Fatal. The whole list is checked before the
//     sweep starts; with WithoutValidate only visited edges are checked and
//     the Result reports how far the sweep got.
//
// Complexity: O(V + E·α(V)) with the optimized set; O(V + E·V) worst case
// with the naive one. No sorting.
package sweep
