// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and the BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/minfill/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// every constructor in order. The first error is returned wrapped as
// "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
