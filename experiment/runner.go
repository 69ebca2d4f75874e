package experiment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/generator"
	"github.com/katalvlaran/dsubench/random"
	"github.com/katalvlaran/dsubench/snapshot"
	"github.com/katalvlaran/dsubench/sweep"
	"golang.org/x/sync/errgroup"
)

// SweepTiming is one strategy's sweep over one graph.
type SweepTiming struct {
	Strategy dsu.Strategy
	Took     time.Duration
	Result   sweep.Result
}

// Measurement is the outcome of one job.
type Measurement struct {
	Exp      int
	N        int
	Rep      int
	Seed     int64 // seed of the job's own stream
	Edges    int
	Stats    generator.Stats
	Generate time.Duration
	Sweeps   []SweepTiming
	Snapshot string // path, when snapshots are enabled
	// SnapshotBytes is the on-disk size of Snapshot.
	SnapshotBytes int64
}

// Runner executes a Plan.
type Runner struct {
	plan    Plan
	logger  *dsubench.Logger
	metrics MetricsCollector
	now     func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger; the default discards output.
func WithLogger(l *dsubench.Logger) RunnerOption {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithMetrics sets the metrics collector; the default is a no-op.
func WithMetrics(m MetricsCollector) RunnerOption {
	if m == nil {
		panic("experiment: WithMetrics(nil)")
	}
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner validates plan and returns a Runner for it. A zero plan seed is
// replaced by a clock-derived one so the run can be reproduced from the report.
func NewRunner(plan Plan, opts ...RunnerOption) (*Runner, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	if plan.Seed == 0 {
		plan.Seed = random.NewTimeSource().Seed()
	}
	r := &Runner{
		plan:    plan,
		logger:  dsubench.NoopLogger(),
		metrics: NoopMetricsCollector{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Plan returns the resolved plan, including the effective seed.
func (r *Runner) Plan() Plan {
	return r.plan
}

type job struct {
	index, exp, rep int
}

// Run executes every job and returns the measurements ordered by size, then
// repetition. The first failing job cancels the rest.
func (r *Runner) Run(ctx context.Context) ([]Measurement, error) {
	var jobs []job
	for exp := r.plan.MinExp; exp <= r.plan.MaxExp; exp++ {
		for rep := 0; rep < r.plan.Repeat; rep++ {
			jobs = append(jobs, job{index: len(jobs), exp: exp, rep: rep})
		}
	}

	root := random.NewSource(r.plan.Seed)
	out := make([]Measurement, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.plan.Parallel)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := r.runJob(gctx, j, root.Split(j.index))
			if err != nil {
				return fmt.Errorf("exp %d rep %d: %w", j.exp, j.rep, err)
			}
			out[j.index] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Runner) runJob(ctx context.Context, j job, src *random.Source) (Measurement, error) {
	n := 1 << j.exp
	log := r.logger.WithJob(j.exp, j.rep)
	m := Measurement{Exp: j.exp, N: n, Rep: j.rep, Seed: src.Seed()}

	start := r.now()
	list, st, err := generator.GenerateWithStats(n, r.plan.Probability, r.plan.Buckets,
		generator.WithSource(src), generator.WithReserve())
	m.Generate = r.now().Sub(start)
	if err != nil {
		r.metrics.RecordGenerate(n, 0, m.Generate, err)
		log.LogGenerate(ctx, n, 0, m.Generate, err)
		return m, err
	}
	m.Edges, m.Stats = list.Len(), st
	r.metrics.RecordGenerate(n, m.Edges, m.Generate, nil)
	log.LogGenerate(ctx, n, m.Edges, m.Generate, nil)

	if r.plan.SnapshotDir != "" {
		m.Snapshot = filepath.Join(r.plan.SnapshotDir, fmt.Sprintf("graph-e%02d-r%03d.dsub", j.exp, j.rep))
		if err := snapshot.WriteFile(m.Snapshot, list, n, r.plan.Codec); err != nil {
			return m, fmt.Errorf("snapshot: %w", err)
		}
		if fi, err := os.Stat(m.Snapshot); err == nil {
			m.SnapshotBytes = fi.Size()
		}
	}

	for _, s := range r.plan.Strategies {
		start = r.now()
		res, err := sweep.Sweep(list, n, sweep.WithStrategy(s), sweep.WithoutValidate())
		took := r.now().Sub(start)
		r.metrics.RecordSweep(s, res.Visited, took, err)
		log.LogSweep(ctx, s.String(), res.Visited, res.Connected, took, err)
		if err != nil {
			return m, err
		}
		m.Sweeps = append(m.Sweeps, SweepTiming{Strategy: s, Took: took, Result: res})
	}
	return m, nil
}

// Replay sweeps a stored snapshot with each strategy. A nil logger discards
// output.
func Replay(path string, strategies []dsu.Strategy, logger *dsubench.Logger) (snapshot.Graph, []SweepTiming, error) {
	if logger == nil {
		logger = dsubench.NoopLogger()
	}
	g, err := snapshot.ReadFile(path)
	if err != nil {
		return snapshot.Graph{}, nil, fmt.Errorf("Replay: %w", err)
	}
	var out []SweepTiming
	for _, s := range strategies {
		start := time.Now()
		res, err := sweep.Sweep(g.Edges, g.N, sweep.WithStrategy(s))
		took := time.Since(start)
		logger.LogSweep(context.Background(), s.String(), res.Visited, res.Connected, took, err)
		if err != nil {
			return g, out, fmt.Errorf("Replay: %w", err)
		}
		out = append(out, SweepTiming{Strategy: s, Took: took, Result: res})
	}
	return g, out, nil
}
