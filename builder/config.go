// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig and its deterministic defaults.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn func(int) string
	// rng drives stochastic constructors; nil means none was configured.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults (decimal IDs, no RNG).
// Later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: strconv.Itoa}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
