// SPDX-License-Identifier: MIT
// Package: dsubench/sweep
//
// sweep.go: Sweep / Run over a bucketed edge list with early termination.
//
// Complexity:
//   - Validation: O(E), skipped with WithoutValidate.
//   - Sweep: O(V + E·α(V)) optimized, O(V + E·V) naive worst case.
//
// Determinism:
//   - Buckets ascending, insertion order inside a bucket; no sorting.

package sweep

import (
	"fmt"

	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/dsu"
)

// Sweep processes list over a fresh disjoint set of n elements.
//
// Steps:
//  1. Validate: list != nil, n >= 0 (dsu constructor).
//  2. Build the set for the configured strategy.
//  3. Run the sweep; see Run. Every endpoint is checked against [0,n) first
//     unless WithoutValidate is given.
func Sweep(list *bucketed.List, n int, opts ...Option) (Result, error) {
	if list == nil {
		return Result{}, ErrNilList
	}
	cfg := newConfig(opts...)

	switch cfg.strategy {
	case dsu.StrategyNaive:
		set, err := dsu.NewNaive(n)
		if err != nil {
			return Result{}, fmt.Errorf("Sweep: %w", err)
		}
		return run(set, list, cfg)
	default:
		set, err := dsu.NewOptimized(n)
		if err != nil {
			return Result{}, fmt.Errorf("Sweep: %w", err)
		}
		return run(set, list, cfg)
	}
}

// Run processes list over set, which should be fresh. The universe size is
// set.Len().
func Run[S dsu.Set](set S, list *bucketed.List, opts ...Option) (Result, error) {
	if list == nil {
		return Result{}, ErrNilList
	}
	return run(set, list, newConfig(opts...))
}

func run[S dsu.Set](set S, list *bucketed.List, cfg config) (Result, error) {
	var res Result
	n := set.Len()

	// 1) Full endpoint scan, so a bad edge fails even past the termination point.
	if cfg.validate {
		if err := list.Validate(n); err != nil {
			return res, fmt.Errorf("Sweep: %w: %w", ErrOutOfRange, err)
		}
	}

	// 2) A single vertex is connected without any edge.
	if n == 1 && !set.Contains(0) {
		set.MakeSet(0)
	}
	if set.IsConnected() {
		res.Connected = true
		return res, nil
	}

	// 3) Buckets ascending; stop on the first edge that completes connectivity.
	for b, bucket := range list.Buckets() {
		for _, e := range bucket {
			res.Visited++
			if e.X < 0 || e.X >= n || e.Y < 0 || e.Y >= n {
				return res, fmt.Errorf("Sweep: bucket %d edge %s outside [0,%d): %w", b, e, n, ErrOutOfRange)
			}

			// Cycle edge: both endpoints known and already together.
			if set.Contains(e.X) && set.Contains(e.Y) && set.Find(e.X) == set.Find(e.Y) {
				res.Skipped++
				continue
			}

			if set.AddEdge(e.X, e.Y) {
				res.Merged++
				res.Weight += b
				if cfg.forest {
					res.Forest = append(res.Forest, e)
				}
			} else {
				// Self-loop on a fresh vertex: inserted, nothing merged.
				res.Skipped++
			}

			if set.IsConnected() {
				res.Connected = true
				return res, nil
			}
		}
	}

	res.Connected = set.IsConnected()
	return res, nil
}
