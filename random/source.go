package random

import (
	"math/rand"
	"time"
)

// coinScale is the size of the integer range a coin probability is
// discretized to: draws are uniform in [0, coinScale).
const coinScale = 1 << 31

// Source is a seeded pseudo-random generator handle.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource returns a generator seeded with seed. Equal seeds yield equal streams.
func NewSource(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewTimeSource returns a generator seeded from the wall clock. Use Seed to
// record the value for a later reproduction.
func NewTimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Split derives an independent child stream. The child seed depends only on
// the parent seed and stream, never on how many draws the parent has made,
// so job k of a parallel run sees the same numbers regardless of scheduling.
func (s *Source) Split(stream int) *Source {
	return NewSource(int64(mix64(uint64(s.seed) ^ mix64(uint64(stream)+1))))
}

// UniformBelow returns a value in [0, k) by modulo reduction of a 31-bit draw.
// It panics if k <= 0, like math/rand.Intn.
func (s *Source) UniformBelow(k int) int {
	if k <= 0 {
		panic("random: UniformBelow(k <= 0)")
	}
	return int(s.rng.Int31()) % k
}

// draw31 returns a uniform value in [0, coinScale).
func (s *Source) draw31() int64 {
	return int64(s.rng.Int31())
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
