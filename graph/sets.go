// SPDX-License-Identifier: MIT
//
// File: sets.go
// Role: neighborhoods, components and fill counting over vertex sets.

package graph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// NeighborSetOf returns N(S) \ S.
// Complexity: O(|S|·n/64).
func (g *Graph) NeighborSetOf(s *bitset.BitSet) *bitset.BitSet {
	out := vset.New(g.n)
	for v, ok := s.NextSet(0); ok; v, ok = s.NextSet(v + 1) {
		out.InPlaceUnion(g.adj[v])
	}
	out.InPlaceDifference(s)

	return out
}

// ClosedNeighborSet returns N[v] = N(v) ∪ {v}.
func (g *Graph) ClosedNeighborSet(v int) *bitset.BitSet {
	out := g.adj[v].Clone()
	out.Set(uint(v))

	return out
}

// ClosedNeighborSetOf returns N[S] = S ∪ N(S).
func (g *Graph) ClosedNeighborSetOf(s *bitset.BitSet) *bitset.BitSet {
	out := s.Clone()
	for v, ok := s.NextSet(0); ok; v, ok = s.NextSet(v + 1) {
		out.InPlaceUnion(g.adj[v])
	}

	return out
}

// Components returns the connected components of G − separator, each
// ordered by its smallest vertex.
func (g *Graph) Components(separator *bitset.BitSet) []*bitset.BitSet {
	return g.ComponentsOf(g.all.Difference(separator))
}

// ComponentsOf returns the connected components of G[vertices], ordered by
// their smallest vertex.
//
// Steps:
//  1. Take the smallest unvisited vertex as a seed.
//  2. Repeatedly absorb the neighbors of the last frontier inside vertices.
//  3. Remove the component from the pool and continue.
//
// Complexity: O(n·n/64).
func (g *Graph) ComponentsOf(vertices *bitset.BitSet) []*bitset.BitSet {
	var out []*bitset.BitSet
	rest := vertices.Clone()
	for v, ok := rest.NextSet(0); ok; v, ok = rest.NextSet(0) {
		comp := vset.Of(g.n, int(v))
		frontier := comp.Clone()
		for frontier.Any() {
			next := vset.New(g.n)
			for w, ok := frontier.NextSet(0); ok; w, ok = frontier.NextSet(w + 1) {
				next.InPlaceUnion(g.adj[w])
			}
			next.InPlaceIntersection(rest)
			next.InPlaceDifference(comp)
			comp.InPlaceUnion(next)
			frontier = next
		}
		rest.InPlaceDifference(comp)
		out = append(out, comp)
	}

	return out
}

// FullComponents returns the components C of G − separator with
// N(C) = separator.
func (g *Graph) FullComponents(separator *bitset.BitSet) []*bitset.BitSet {
	var out []*bitset.BitSet
	size := separator.Count()
	for _, c := range g.Components(separator) {
		if g.NeighborSetOf(c).Count() == size {
			out = append(out, c)
		}
	}

	return out
}

// IsConnected reports whether G[vertices] is connected. The empty set is.
func (g *Graph) IsConnected(vertices *bitset.BitSet) bool {
	return len(g.ComponentsOf(vertices)) <= 1
}

// CountFill returns the number of non-adjacent pairs inside S.
// Complexity: O(|S|·n/64).
func (g *Graph) CountFill(s *bitset.BitSet) int {
	size := int(s.Count())
	degSum := 0
	for u, ok := s.NextSet(0); ok; u, ok = s.NextSet(u + 1) {
		degSum += int(s.IntersectionCardinality(g.adj[u]))
	}

	return (size*(size-1) - degSum) / 2
}

// CountFillBetween returns the number of non-adjacent pairs in X × Y. X and Y
// are expected to be disjoint.
func (g *Graph) CountFillBetween(x, y *bitset.BitSet) int {
	degSum := 0
	for u, ok := x.NextSet(0); ok; u, ok = x.NextSet(u + 1) {
		degSum += int(y.IntersectionCardinality(g.adj[u]))
	}

	return int(x.Count())*int(y.Count()) - degSum
}

// IsClique reports whether S induces a complete subgraph.
func (g *Graph) IsClique(s *bitset.BitSet) bool {
	return g.CountFill(s) == 0
}

// MissingEdges lists the non-adjacent pairs {u<w} inside S.
func (g *Graph) MissingEdges(s *bitset.BitSet) [][2]int {
	var out [][2]int
	for u, ok := s.NextSet(0); ok; u, ok = s.NextSet(u + 1) {
		for w, ok := s.NextSet(u + 1); ok; w, ok = s.NextSet(w + 1) {
			if !g.adj[u].Test(w) {
				out = append(out, [2]int{int(u), int(w)})
			}
		}
	}

	return out
}
