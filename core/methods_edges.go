// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge catalog and adjacency operations.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge connects from and to, creating missing endpoints. It returns the ID
// of the new edge, or of the existing edge when the pair is already connected.
//
// Steps:
//  1. Validate IDs, loops and weight against the graph mode.
//  2. Ensure both endpoints exist.
//  3. Reuse an existing edge or allocate "e<N>" and mirror it when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("core: AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("core: AddEdge(%s,%s) weight=%d: %w", from, to, weight, ErrBadWeight)
	}

	g.muVert.Lock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}

	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.link(from, to, eid)
	if !g.directed {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link assumes muEdgeAdj is held for writing.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]string)
		g.adjacency[from] = inner
	}
	inner[to] = eid
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[e.From], e.To)
	if !g.directed {
		delete(g.adjacency[e.To], e.From)
	}
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether an edge from→to exists (either direction when
// undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns all edges sorted by ID (numerically by allocation order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)

	return n
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id, ordered by the neighbor ID.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner := g.adjacency[id]
	to := make([]string, 0, len(inner))
	for v := range inner {
		to = append(to, v)
	}
	sort.Strings(to)
	out := make([]*Edge, len(to))
	for i, v := range to {
		out[i] = g.edges[inner[v]]
	}

	return out, nil
}
