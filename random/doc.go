// Package random supplies the two kinds of draws the generator needs: biased
// booleans ("include this edge") and bounded integers ("pick a weight bucket").
//
// There is no process-wide generator. A *Source is an explicit handle created
// once per run with NewSource(seed) or NewTimeSource(); every consumer receives
// it as an argument, so experiments stay reproducible and parallel runs can
// use independent streams obtained from Split.
//
// Draws are NOT cryptographically secure. UniformBelow uses modulo reduction
// and carries the usual low-order bias; that is acceptable for benchmarking.
//
// A Source is not safe for concurrent use.
package random
