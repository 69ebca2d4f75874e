// Package dsubench benchmarks disjoint-set (union-find) strategies over
// synthetic, weight-bucketed random graphs.
//
// What is inside?
//
//	random/        seeded generator handle, biased coin, bounded draws
//	dsu/           disjoint set: Naive and Optimized (path compression + union by rank)
//	bucketed/      Edge and the bucketed edge list (weight class = bucket index)
//	generator/     random connected graph generator over n vertices and w buckets
//	sweep/         Kruskal-style connectivity sweep with early termination
//	snapshot/      compressed binary snapshots of generated graphs (zstd/lz4)
//	dotgraph/      Graphviz rendering of a snapshot
//	experiment/    YAML plans, parallel runner, metrics and text reports
//	cmd/dsubench/  command line driver (run, replay, dot, plan)
//
// The core (random, dsu, bucketed, generator, sweep) is synchronous and does
// no I/O; the driver packages time it from the outside.
//
// Quick example:
//
//	list, _ := generator.Generate(1<<10, 0.2, 10, generator.WithSeed(42))
//	res, _ := sweep.Sweep(list, 1<<10)
//	fmt.Println(res.Connected, res.Visited, list.Len())
//
// This root package holds the shared error classes and the structured logger.
package dsubench
