// SPDX-License-Identifier: MIT
// Package: dsubench/generator
//
// generate.go: Generate(n, p, w): random edges, then connectivity repair.
//
// Complexity:
//   - Time: O(n²) coin tosses + O(E·α(n)) set operations.
//   - Space: O(n) scratch set + O(E) output.
//
// Determinism:
//   - Pair order: i asc, then j asc in [0, i).
//   - Per included edge: one coin draw, then one bucket draw.

package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/random"
)

const (
	methodGenerate = "Generate"
	minVertices    = 1
	minBuckets     = 1
	probMin        = 0.0
	probMax        = 1.0
	noGroup        = -1 // repair phase: no group seen yet
)

// Stats counts the edges each phase contributed.
type Stats struct {
	RandomEdges int // phase 1 coin hits
	RepairEdges int // isolated vertex bound to its successor
	Bridges     int // edges joining two previously separate groups
}

// Total returns the number of edges in the generated list.
func (s Stats) Total() int { return s.RandomEdges + s.RepairEdges + s.Bridges }

// Generate returns a connected graph over vertices 0..n-1 with edges spread
// over w buckets. See the package documentation for the algorithm.
func Generate(n int, p float64, w int, opts ...Option) (*bucketed.List, error) {
	list, _, err := GenerateWithStats(n, p, w, opts...)
	return list, err
}

// GenerateWithStats is Generate plus per-phase edge counts.
func GenerateWithStats(n int, p float64, w int, opts ...Option) (*bucketed.List, Stats, error) {
	// 1) Validate parameters in a fixed order; no side effects on failure.
	if n < minVertices {
		return nil, Stats{}, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodGenerate, n, minVertices, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, Stats{}, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodGenerate, p, probMin, probMax, ErrInvalidProbability)
	}
	if w < minBuckets {
		return nil, Stats{}, fmt.Errorf("%s: w=%d < min=%d: %w",
			methodGenerate, w, minBuckets, ErrInvalidBucketCount)
	}

	cfg := newConfig(opts...)
	if cfg.src == nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	coin, err := random.NewCoin(cfg.src, p)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w: %w", methodGenerate, ErrInvalidProbability, err)
	}

	// 2) Resolve the destination list.
	list := cfg.into
	if list != nil {
		if list.BucketCount() != w {
			return nil, Stats{}, fmt.Errorf("%s: into has %d buckets, want %d: %w",
				methodGenerate, list.BucketCount(), w, ErrBucketMismatch)
		}
		list.Reset()
	} else if list, err = bucketed.New(w); err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if cfg.reserve {
		list.Reserve(expectedPerBucket(n, p, w))
	}

	// 3) Run both phases over the selected scratch set; build is instantiated
	//    per concrete set type.
	var st Stats
	switch cfg.scratch {
	case dsu.StrategyNaive:
		set, err := dsu.NewNaive(n)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		st = build(set, list, coin, cfg.src, n, w)
	default:
		set, err := dsu.NewOptimized(n)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		st = build(set, list, coin, cfg.src, n, w)
	}

	return list, st, nil
}

// build runs the random-edge and repair phases.
//
// The repair scan departs from the textbook two-branch version in one place:
// an isolated vertex, once bound to its successor, is still bridged to the
// remembered group instead of replacing it, and groups are compared by their
// current root. Without that, n=4 with only the edge 0-1 ends as {0,1},{2,3}.
func build[S dsu.Set](set S, list *bucketed.List, coin *random.Coin, src *random.Source, n, w int) Stats {
	var st Stats

	// Phase 1: Bernoulli trial per unordered pair.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if coin.Toss() {
				list.Add(src.UniformBelow(w), bucketed.Edge{X: j, Y: i})
				set.AddEdge(j, i)
				st.RandomEdges++
			}
		}
	}

	// Phase 2: bind isolated vertices and bridge groups to the remembered one.
	group := noGroup
	for i := 0; i < n; i++ {
		if !set.Contains(i) {
			next := (i + 1) % n
			if next == i {
				// Single-vertex universe: a self-loop would add nothing.
				set.MakeSet(i)
				group = i
				continue
			}
			list.Add(src.UniformBelow(w), bucketed.Edge{X: i, Y: next})
			set.AddEdge(i, next)
			st.RepairEdges++
		}

		cur := set.Find(i)
		if group == noGroup {
			group = cur
			continue
		}
		if set.Find(group) != cur {
			list.Add(src.UniformBelow(w), bucketed.Edge{X: group, Y: cur})
			set.AddEdge(group, cur)
			st.Bridges++
		}
	}

	return st
}

// expectedPerBucket mirrors the reservation heuristic n·p·(n/2/w), with the
// integer division kept as is.
func expectedPerBucket(n int, p float64, w int) int {
	return int(float64(n) * p * float64(n/2/w))
}
