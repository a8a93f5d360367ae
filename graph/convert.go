// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: induced subgraphs and conversion to and from core.Graph.

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/core"
)

// Induced returns G[s] together with the map from its vertices to the
// vertices of g. Labels carry over, so their order is preserved.
func (g *Graph) Induced(s *bitset.BitSet) (*Graph, []int) {
	orig := make([]int, 0, s.Count())
	for v, ok := s.NextSet(0); ok; v, ok = s.NextSet(v + 1) {
		orig = append(orig, int(v))
	}
	labels := make([]string, len(orig))
	conv := make(map[int]int, len(orig))
	for i, v := range orig {
		labels[i] = g.labels[v]
		conv[v] = i
	}
	h := newGraph(labels)
	for i, v := range orig {
		row := g.adj[v]
		for w, ok := row.NextSet(0); ok; w, ok = row.NextSet(w + 1) {
			if j, in := conv[int(w)]; in {
				h.adj[i].Set(uint(j))
			}
		}
	}

	return h, orig
}

// FromCore builds the indexed graph of an undirected core.Graph. Vertex IDs
// become labels; edge weights are ignored.
func FromCore(cg *core.Graph) (*Graph, error) {
	if cg.Directed() {
		return nil, fmt.Errorf("graph: FromCore: %w", ErrDirected)
	}
	g, err := NewLabeled(cg.Vertices())
	if err != nil {
		return nil, err
	}
	for _, e := range cg.Edges() {
		if err := g.AddEdgeBetween(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ToCore returns an undirected, unweighted core.Graph with the same labels
// and edges.
func (g *Graph) ToCore() *core.Graph {
	cg := core.NewGraph()
	for _, l := range g.labels {
		_ = cg.AddVertex(l)
	}
	for u := 0; u < g.n; u++ {
		row := g.adj[u]
		for w, ok := row.NextSet(uint(u) + 1); ok; w, ok = row.NextSet(w + 1) {
			_, _ = cg.AddEdge(g.labels[u], g.labels[w], 0)
		}
	}

	return cg
}
