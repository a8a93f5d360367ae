// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/minfill/decomposer"
	"github.com/katalvlaran/minfill/logging"
)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. Pieces are reported at Info level and the
// decomposer receives the same logger unless WithDecomposerOptions
// overrides it. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}

	return func(s *Solver) { s.log = l }
}

// WithDecomposerOptions appends options passed to every decomposer.
func WithDecomposerOptions(opts ...decomposer.Option) Option {
	return func(s *Solver) { s.decOpts = append(s.decOpts, opts...) }
}

// WithUpperBound makes Solve fail with ErrInfeasible when the minimum fill
// exceeds b. Panics if b < 0.
func WithUpperBound(b int) Option {
	if b < 0 {
		panic("solver: WithUpperBound: negative bound")
	}

	return func(s *Solver) { s.upperBound = b }
}

// WithTriangulationBound runs every decomposer with a fixed upper bound
// taken from the MCS-M minimal triangulation of its piece instead of
// iterative deepening.
func WithTriangulationBound() Option {
	return func(s *Solver) { s.triangulationBound = true }
}
