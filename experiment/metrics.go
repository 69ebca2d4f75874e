package experiment

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/dsubench/dsu"
)

// MetricsCollector receives one call per timed phase. Implementations must be
// safe for concurrent use when the plan runs jobs in parallel.
type MetricsCollector interface {
	// RecordGenerate is called after each generation; edges is the list size.
	RecordGenerate(n, edges int, duration time.Duration, err error)
	// RecordSweep is called after each sweep.
	RecordSweep(strategy dsu.Strategy, visited int, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordSweep(dsu.Strategy, int, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory totals.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateTotalNanos atomic.Int64
	EdgesGenerated     atomic.Int64

	// Indexed by dsu.Strategy.
	SweepCount      [dsu.NumStrategies]atomic.Int64
	SweepErrors     [dsu.NumStrategies]atomic.Int64
	SweepTotalNanos [dsu.NumStrategies]atomic.Int64
	EdgesVisited    [dsu.NumStrategies]atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(_, edges int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
		return
	}
	b.EdgesGenerated.Add(int64(edges))
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(strategy dsu.Strategy, visited int, duration time.Duration, err error) {
	i := int(strategy)
	if i < 0 || i >= len(b.SweepCount) {
		return
	}
	b.SweepCount[i].Add(1)
	b.SweepTotalNanos[i].Add(duration.Nanoseconds())
	if err != nil {
		b.SweepErrors[i].Add(1)
		return
	}
	b.EdgesVisited[i].Add(int64(visited))
}

// MeanSweep returns the average sweep time for a strategy.
func (b *BasicMetricsCollector) MeanSweep(strategy dsu.Strategy) time.Duration {
	i := int(strategy)
	if i < 0 || i >= len(b.SweepCount) {
		return 0
	}
	count := b.SweepCount[i].Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.SweepTotalNanos[i].Load() / count)
}
