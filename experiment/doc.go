// Package experiment drives the benchmark: it expands a Plan into jobs over
// graph sizes n = 2^exp and repetitions, generates one graph per job, sweeps
// it with every requested disjoint-set strategy, and times both phases.
//
// Jobs may run in parallel (Plan.Parallel). Each job gets its own random
// stream derived from the plan seed and its job index, and its own disjoint
// sets, so results do not depend on scheduling.
//
// Timing is wall-clock around each core call; the core packages themselves
// know nothing about it.
package experiment
