package dsu

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dsubench"
)

// ErrInvalidSize indicates a negative universe size.
var ErrInvalidSize = fmt.Errorf("dsu: negative universe size: %w", dsubench.ErrInvalidArgument)

// ErrUnknownStrategy indicates a strategy name or tag that is not recognized.
var ErrUnknownStrategy = fmt.Errorf("dsu: unknown strategy: %w", dsubench.ErrInvalidArgument)

// Set is the capability shared by both strategies.
type Set interface {
	// Len returns the universe size n.
	Len() int
	// MakeSet inserts x as a singleton. x must not be inserted yet.
	MakeSet(x int)
	// Find returns the root of x. An uninserted x is its own root.
	Find(x int) int
	// Union merges the sets of two inserted elements and reports whether
	// a merge happened (false when they already shared a root).
	Union(x, y int) bool
	// AddEdge inserts any uninserted endpoint, then unions them.
	AddEdge(x, y int) bool
	// Contains reports whether x has been inserted.
	Contains(x int) bool
	// InsertedCount returns how many elements have been inserted.
	InsertedCount() int
	// SetCount returns the number of disjoint sets among inserted elements.
	SetCount() int
	// IsConnected reports whether all n elements form a single set.
	IsConnected() bool
}

// slotState is the explicit per-slot state.
type slotState uint8

const (
	stateUninserted slotState = iota
	stateRoot
	stateChild
)

// Strategy selects a Set implementation.
type Strategy uint8

const (
	// StrategyOptimized selects path compression with union by rank.
	StrategyOptimized Strategy = iota
	// StrategyNaive selects the unbalanced, uncompressed variant.
	StrategyNaive

	// NumStrategies counts the strategies above; usable as an array length
	// for per-strategy tables.
	NumStrategies = int(iota)
)

// Strategies lists every strategy in a stable order.
var Strategies = []Strategy{StrategyOptimized, StrategyNaive}

var strategyNames = map[Strategy]string{
	StrategyOptimized: "optimized",
	StrategyNaive:     "naive",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(s), ErrUnknownStrategy)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// New returns a Set of the given strategy over n elements.
//
// Errors:
//   - ErrInvalidSize     : n < 0.
//   - ErrUnknownStrategy : strategy is not one of Strategies.
func New(strategy Strategy, n int) (Set, error) {
	switch strategy {
	case StrategyOptimized:
		s, err := NewOptimized(n)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StrategyNaive:
		s, err := NewNaive(n)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("New(%d): %w", uint8(strategy), ErrUnknownStrategy)
	}
}

func checkSize(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidSize)
	}
	return nil
}
