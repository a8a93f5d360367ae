// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: CloneEmpty.

package core

// CloneEmpty returns a graph with the same mode and vertex set but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	c := NewGraph(WithDirected(g.directed))
	c.weighted = g.weighted
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id := range g.vertices {
		c.addVertexLocked(id)
	}

	return c
}
