// SPDX-License-Identifier: MIT
// Package: dsubench
//
// errors.go: error classes shared by every package of the module.
//
// Error policy:
//   • Two classes only: ErrInvalidArgument (validation at entry) and
//     ErrOutOfRange (vertex index outside the declared universe).
//   • Packages declare their own sentinels wrapping one of the classes, so
//     errors.Is works against both the precise sentinel and the class.
//   • Nothing is retryable: every core operation is a total function of its
//     validated inputs.

package dsubench

import "errors"

// ErrInvalidArgument classifies validation failures: probability outside [0,1],
// zero bucket count, negative universe size, nil collaborators.
var ErrInvalidArgument = errors.New("dsubench: invalid argument")

// ErrOutOfRange classifies edge endpoints outside [0, n). It signals a logic
// defect between producer and consumer of an edge list and is never recovered.
var ErrOutOfRange = errors.New("dsubench: index out of range")
