// Package generator builds random connected graphs whose edges are
// pre-partitioned into w coarse weight buckets.
//
// Algorithm
//
//  1. Random-edge phase, O(n²): every unordered pair (j, i), 0 ≤ j < i < n,
//     is examined once (i ascending, then j ascending). A biased coin with
//     probability p decides inclusion; an included edge goes to a uniformly
//     random bucket and is recorded in a scratch disjoint set.
//
//  2. Connectivity-repair phase, O(n) extra edges at most: vertices are
//     scanned in index order while remembering one member g of the group
//     built so far.
//     • A vertex never touched by phase 1 is bound to its successor
//       (i+1) mod n, and the resulting group is bridged to g when their
//       roots differ.
//     • A vertex already grouped is bridged to g when its root differs
//       from the root of g.
//     After the scan every vertex shares g's set, so the graph is connected.
//
// For n == 1 the single vertex needs no edge and the result is empty.
//
// Determinism: for a fixed seed and identical (n, p, w) the output is
// identical, because the draw order is fixed by the loops above.
//
// Ownership: the caller owns the returned List. WithInto lets a driver reuse
// one List across experiments; it is reset before generation. No state
// survives between calls.
//
// Errors (all wrap dsubench.ErrInvalidArgument):
//
//	ErrTooFewVertices      n < 1
//	ErrInvalidProbability  p outside [0,1]
//	ErrInvalidBucketCount  w < 1
//	ErrNeedRandSource      no WithSeed/WithSource option
//	ErrBucketMismatch      WithInto list has a different bucket count
package generator
