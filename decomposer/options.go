// SPDX-License-Identifier: MIT

package decomposer

import (
	"github.com/katalvlaran/minfill/bounds"
	"github.com/katalvlaran/minfill/logging"
)

// Growth selects how the trial upper bound rises between rounds of
// Decompose(-1).
type Growth int

const (
	// GrowthAdditive starts at lb + 1 + lb/2 and adds 1 + lb/2 per round,
	// where lb is the lower bound of the whole graph.
	GrowthAdditive Growth = iota

	// GrowthDoubling starts at max(1, lb) and doubles every round.
	GrowthDoubling
)

// String returns "additive" or "doubling".
func (g Growth) String() string {
	switch g {
	case GrowthAdditive:
		return "additive"
	case GrowthDoubling:
		return "doubling"
	default:
		return "unknown"
	}
}

// Option configures a Decomposer.
type Option func(*Decomposer)

// WithGrowth sets the upper-bound growth policy.
// Panics on an unknown policy.
func WithGrowth(g Growth) Option {
	if g != GrowthAdditive && g != GrowthDoubling {
		panic("decomposer: WithGrowth: unknown policy")
	}

	return func(d *Decomposer) { d.growth = g }
}

// WithLogger sets the logger receiving per-round progress at Debug level.
// Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("decomposer: WithLogger(nil)")
	}

	return func(d *Decomposer) { d.log = l }
}

// WithMaxCycleLength forwards the cycle length limit to the lower-bound
// estimator used for pruning.
func WithMaxCycleLength(k int) Option {
	opt := bounds.WithMaxCycleLength(k)

	return func(d *Decomposer) { d.boundOpts = append(d.boundOpts, opt) }
}
