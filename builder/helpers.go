// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: vertex and edge insertion shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/minfill/core"
)

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts an unweighted edge u–v.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
