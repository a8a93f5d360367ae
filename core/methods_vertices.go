// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: vertex catalog operations (add, query, enumerate).

package core

import "sort"

// AddVertex inserts a vertex with the given id. Re-adding an existing id is a
// no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked assumes muVert is held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
