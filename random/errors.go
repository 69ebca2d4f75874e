package random

import (
	"fmt"

	"github.com/katalvlaran/dsubench"
)

// ErrInvalidProbability indicates a coin probability outside the closed
// interval [0,1] (NaN included).
var ErrInvalidProbability = fmt.Errorf("random: probability out of range: %w", dsubench.ErrInvalidArgument)

// ErrNilSource indicates that a coin was requested without a generator handle.
var ErrNilSource = fmt.Errorf("random: nil source: %w", dsubench.ErrInvalidArgument)
