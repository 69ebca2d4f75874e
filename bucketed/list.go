// Package bucketed holds the generator's output: edges grouped by a coarse
// integer weight class.
//
// A List has w buckets. The bucket index is the weight of every edge in it,
// so walking buckets in ascending order approximates a sort by weight without
// sorting; ties inside a bucket keep insertion order. This is a deliberate
// radix-style trade-off, not a sorted edge list.
//
// The caller owns a List. Reset clears it while keeping the allocated
// capacity, so one List can be reused across repeated experiments.
package bucketed

import (
	"fmt"

	"github.com/katalvlaran/dsubench"
)

// ErrInvalidBucketCount indicates a List with fewer than one bucket.
var ErrInvalidBucketCount = fmt.Errorf("bucketed: bucket count must be positive: %w", dsubench.ErrInvalidArgument)

// ErrOutOfRange indicates an endpoint or bucket index outside its domain.
var ErrOutOfRange = fmt.Errorf("bucketed: %w", dsubench.ErrOutOfRange)

// Edge is a pair of vertex indices. Direction is an artifact of generation
// order; consumers treat it as undirected.
type Edge struct {
	X, Y int
}

// String renders the edge as "x-y".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.X, e.Y)
}

// List is an ordered sequence of weight buckets.
type List struct {
	buckets [][]Edge
}

// New returns an empty List with w buckets.
func New(w int) (*List, error) {
	if w < 1 {
		return nil, fmt.Errorf("New: w=%d: %w", w, ErrInvalidBucketCount)
	}
	return &List{buckets: make([][]Edge, w)}, nil
}

// FromBuckets wraps existing buckets without copying. Used by decoders and
// hand-built fixtures.
func FromBuckets(buckets [][]Edge) (*List, error) {
	if len(buckets) < 1 {
		return nil, fmt.Errorf("FromBuckets: w=0: %w", ErrInvalidBucketCount)
	}
	return &List{buckets: buckets}, nil
}

// BucketCount returns w.
func (l *List) BucketCount() int { return len(l.buckets) }

// Add appends e to bucket b. It panics if b is outside [0, w).
func (l *List) Add(b int, e Edge) {
	l.buckets[b] = append(l.buckets[b], e)
}

// Bucket returns the edges of bucket b in insertion order. The slice aliases
// internal storage and must not be modified.
func (l *List) Bucket(b int) []Edge { return l.buckets[b] }

// Buckets returns all buckets in ascending weight order. The slices alias
// internal storage.
func (l *List) Buckets() [][]Edge { return l.buckets }

// Len returns the total number of edges.
func (l *List) Len() int {
	total := 0
	for _, b := range l.buckets {
		total += len(b)
	}
	return total
}

// Edges returns a flattened copy in sweep order (bucket asc, insertion order).
func (l *List) Edges() []Edge {
	out := make([]Edge, 0, l.Len())
	for _, b := range l.buckets {
		out = append(out, b...)
	}
	return out
}

// Reset empties every bucket and keeps capacity.
func (l *List) Reset() {
	for i := range l.buckets {
		l.buckets[i] = l.buckets[i][:0]
	}
}

// Reserve grows every bucket so that it can hold perBucket edges without
// reallocating. Non-positive values are ignored.
func (l *List) Reserve(perBucket int) {
	if perBucket <= 0 {
		return
	}
	for i, b := range l.buckets {
		if cap(b)-len(b) < perBucket {
			grown := make([]Edge, len(b), len(b)+perBucket)
			copy(grown, b)
			l.buckets[i] = grown
		}
	}
}

// Validate checks that every endpoint lies in [0, n) and reports the first
// offending edge.
func (l *List) Validate(n int) error {
	for b, bucket := range l.buckets {
		for i, e := range bucket {
			if e.X < 0 || e.X >= n || e.Y < 0 || e.Y >= n {
				return fmt.Errorf("Validate: bucket %d edge %d (%s) outside [0,%d): %w", b, i, e, n, ErrOutOfRange)
			}
		}
	}
	return nil
}

// Equal reports whether both lists hold the same edges in the same buckets
// and order.
func (l *List) Equal(o *List) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.buckets) != len(o.buckets) {
		return false
	}
	for i := range l.buckets {
		if len(l.buckets[i]) != len(o.buckets[i]) {
			return false
		}
		for j := range l.buckets[i] {
			if l.buckets[i][j] != o.buckets[i][j] {
				return false
			}
		}
	}
	return true
}
