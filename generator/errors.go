// SPDX-License-Identifier: MIT
// Package: dsubench/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Every sentinel wraps dsubench.ErrInvalidArgument, so callers may also
//     branch on the class.
//   • Call sites attach context with %w: "Generate: p=1.5 not in [0,1]: ...".
//   • Validation order: n, then p, then w, then rng, then WithInto shape.

package generator

import (
	"fmt"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/bucketed"
)

// ErrTooFewVertices indicates n < 1.
var ErrTooFewVertices = fmt.Errorf("generator: too few vertices: %w", dsubench.ErrInvalidArgument)

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = fmt.Errorf("generator: probability out of range: %w", dsubench.ErrInvalidArgument)

// ErrInvalidBucketCount indicates w < 1. It is the bucketed package sentinel.
var ErrInvalidBucketCount = bucketed.ErrInvalidBucketCount

// ErrNeedRandSource indicates that no generator handle was configured.
var ErrNeedRandSource = fmt.Errorf("generator: rng is required: %w", dsubench.ErrInvalidArgument)

// ErrBucketMismatch indicates a WithInto list whose bucket count differs from w.
var ErrBucketMismatch = fmt.Errorf("generator: destination bucket count mismatch: %w", dsubench.ErrInvalidArgument)
