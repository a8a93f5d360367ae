// SPDX-License-Identifier: MIT
//
// File: utils.go
// Role: capacity map construction and residual graph export.

package flow

import (
	"context"

	"github.com/katalvlaran/minfill/core"
)

// buildCapMap returns capMap[u][v], the capacity from u to v. Undirected
// edges contribute their weight in both directions; zero capacities are
// dropped.
//
// Complexity: O(V + E·log d_max) because neighbors come back sorted.
func buildCapMap(ctx context.Context, g *core.Graph) (map[string]map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}
	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if v == u {
				v = e.From
			}
			if e.Weight < 0 {
				return nil, EdgeError{From: u, To: v, Cap: e.Weight}
			}
			if e.Weight > 0 {
				capMap[u][v] = e.Weight
			}
		}
	}

	return capMap, nil
}

// buildResidual returns a directed, weighted graph on g's vertices holding
// one edge per positive residual capacity.
func buildResidual(capMap map[string]map[string]int64, g *core.Graph) (*core.Graph, error) {
	residual := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range g.Vertices() {
		if err := residual.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for u, inner := range capMap {
		for v, c := range inner {
			if c <= 0 {
				continue
			}
			if _, err := residual.AddEdge(u, v, c); err != nil {
				return nil, err
			}
		}
	}

	return residual, nil
}
