// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRemoval indicates that ChordalMinus was asked to remove more
// edges than the chordal graph has, or a negative number.
var ErrInvalidRemoval = errors.New("builder: invalid number of removed edges")

// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
