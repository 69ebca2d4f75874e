package random

import (
	"fmt"
	"math"
)

// Coin is a biased coin bound to a Source.
type Coin struct {
	src       *Source
	p         float64
	threshold int64 // Toss fires when draw < threshold
}

// NewCoin returns a coin that lands true with probability p.
//
// Errors:
//   - ErrNilSource          : src == nil.
//   - ErrInvalidProbability : p is NaN or outside [0,1].
func NewCoin(src *Source, p float64) (*Coin, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("NewCoin: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	return &Coin{
		src:       src,
		p:         p,
		threshold: int64(p * coinScale),
	}, nil
}

// P returns the configured probability.
func (c *Coin) P() float64 {
	return c.p
}

// Toss consumes one draw and reports whether it fell under the threshold.
// p == 0 never fires and p == 1 always fires.
func (c *Coin) Toss() bool {
	return c.src.draw31() < c.threshold
}
