package experiment

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/snapshot"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan indicates a plan that cannot be run.
var ErrInvalidPlan = fmt.Errorf("experiment: invalid plan: %w", dsubench.ErrInvalidArgument)

// maxExp keeps n = 2^exp well inside int and uint32 snapshot fields.
const maxExp = 30

// Plan describes one benchmark run.
type Plan struct {
	// MinExp and MaxExp bound the graph sizes: n = 2^exp for exp in [MinExp, MaxExp].
	MinExp int `yaml:"min_exp"`
	MaxExp int `yaml:"max_exp"`
	// Probability is the edge probability p of the random phase.
	Probability float64 `yaml:"probability"`
	// Buckets is the number of weight classes w.
	Buckets int `yaml:"buckets"`
	// Repeat is the number of experiments per size.
	Repeat int `yaml:"repeat"`
	// Seed seeds the run; 0 draws a seed from the clock.
	Seed int64 `yaml:"seed"`
	// Strategies are swept in order over every generated graph.
	Strategies []dsu.Strategy `yaml:"strategies,flow"`
	// Parallel caps concurrently running jobs.
	Parallel int `yaml:"parallel"`
	// Out is the report file; results are appended.
	Out string `yaml:"out"`
	// SnapshotDir, when set, receives one snapshot per generated graph.
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`
	// Codec compresses snapshots.
	Codec snapshot.Codec `yaml:"codec"`
}

// DefaultPlan returns the stock run: one graph of 2^13 vertices, p = 0.2,
// 10 buckets, optimized strategy, report appended to results.txt.
func DefaultPlan() Plan {
	return Plan{
		MinExp:      13,
		MaxExp:      13,
		Probability: 0.2,
		Buckets:     10,
		Repeat:      1,
		Strategies:  []dsu.Strategy{dsu.StrategyOptimized},
		Parallel:    1,
		Out:         "results.txt",
		Codec:       snapshot.CodecZSTD,
	}
}

// LoadPlan reads a YAML plan from path over the defaults; keys missing in
// the file keep their default value.
func LoadPlan(path string) (Plan, error) {
	plan := DefaultPlan()
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("parse YAML: %w", err)
	}
	return plan, nil
}

// Write stores the plan as YAML in dest.
func (p Plan) Write(dest string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Marshal renders the plan as YAML.
func (p Plan) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal YAML: %w", err)
	}
	return data, nil
}

// Validate checks ranges that the core would reject later, so a bad plan
// fails before any work starts.
func (p Plan) Validate() error {
	switch {
	case p.MinExp < 0 || p.MaxExp > maxExp || p.MinExp > p.MaxExp:
		return fmt.Errorf("exp range [%d,%d] outside [0,%d]: %w", p.MinExp, p.MaxExp, maxExp, ErrInvalidPlan)
	case p.Probability < 0 || p.Probability > 1 || p.Probability != p.Probability:
		return fmt.Errorf("probability %v not in [0,1]: %w", p.Probability, ErrInvalidPlan)
	case p.Buckets < 1:
		return fmt.Errorf("buckets %d < 1: %w", p.Buckets, ErrInvalidPlan)
	case p.Repeat < 1:
		return fmt.Errorf("repeat %d < 1: %w", p.Repeat, ErrInvalidPlan)
	case p.Parallel < 1:
		return fmt.Errorf("parallel %d < 1: %w", p.Parallel, ErrInvalidPlan)
	case len(p.Strategies) == 0:
		return fmt.Errorf("no strategies: %w", ErrInvalidPlan)
	}
	for _, s := range p.Strategies {
		if _, err := s.MarshalText(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
	}
	if _, err := p.Codec.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return nil
}

// Sizes returns the graph sizes in run order.
func (p Plan) Sizes() []int {
	var out []int
	for e := p.MinExp; e <= p.MaxExp; e++ {
		out = append(out, 1<<e)
	}
	return out
}
