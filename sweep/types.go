package sweep

import (
	"fmt"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/dsu"
)

// ErrNilList indicates that no edge list was supplied.
var ErrNilList = fmt.Errorf("sweep: nil edge list: %w", dsubench.ErrInvalidArgument)

// ErrOutOfRange indicates an edge endpoint outside the universe [0,n).
var ErrOutOfRange = fmt.Errorf("sweep: edge endpoint: %w", dsubench.ErrOutOfRange)

// Result summarizes one sweep.
type Result struct {
	// Visited counts edges examined, including skipped ones.
	Visited int
	// Merged counts edges whose AddEdge joined two sets.
	Merged int
	// Skipped counts cycle edges and self-loops.
	Skipped int
	// Connected reports whether the set reached full connectivity.
	Connected bool
	// Weight sums the bucket indices of merged edges.
	Weight int
	// Forest holds the merged edges in acceptance order; only with WithForest.
	Forest []bucketed.Edge
}

// config holds the resolved options of one sweep.
type config struct {
	strategy dsu.Strategy
	forest   bool
	validate bool
}

// Option configures a sweep.
type Option func(*config)

// WithStrategy selects the disjoint-set strategy used by Sweep. Run ignores
// it because the caller supplies the set. Panics on an unknown strategy.
func WithStrategy(s dsu.Strategy) Option {
	if _, err := s.MarshalText(); err != nil {
		panic("sweep: WithStrategy(" + s.String() + ")")
	}
	return func(c *config) {
		c.strategy = s
	}
}

// WithForest records the accepted edges in Result.Forest.
func WithForest() Option {
	return func(c *config) {
		c.forest = true
	}
}

// WithoutValidate skips the up-front endpoint scan. Edges the sweep visits
// are still checked, but a bad edge past the termination point goes unnoticed.
// Meant for timed runs over lists that come straight from the generator.
func WithoutValidate() Option {
	return func(c *config) {
		c.validate = false
	}
}

func newConfig(opts ...Option) config {
	cfg := config{strategy: dsu.StrategyOptimized, validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
