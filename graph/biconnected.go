// SPDX-License-Identifier: MIT
//
// File: biconnected.go
// Role: biconnected components and cut points (Hopcroft–Tarjan).

package graph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// BiconnectedComponents returns the vertex sets of the biconnected
// components of G. Cut points appear in every component they join;
// isolated vertices form no component.
// Complexity: O(n + m) visits plus O(n/64) per emitted set.
func (g *Graph) BiconnectedComponents() []*bitset.BitSet {
	s := &bicompState{
		g:   g,
		num: make([]int, g.n),
		low: make([]int, g.n),
	}
	for u := 0; u < g.n; u++ {
		if s.num[u] == 0 {
			s.visit(u)
		}
	}

	return s.out
}

// CutPoints returns the articulation points of G.
func (g *Graph) CutPoints() *bitset.BitSet {
	seen := vset.New(g.n)
	cut := vset.New(g.n)
	for _, c := range g.BiconnectedComponents() {
		cut.InPlaceUnion(seen.Intersection(c))
		seen.InPlaceUnion(c)
	}

	return cut
}

type bicompState struct {
	g     *Graph
	num   []int
	low   []int
	time  int
	stack []int
	out   []*bitset.BitSet
}

func (s *bicompState) visit(u int) {
	s.time++
	s.num[u], s.low[u] = s.time, s.time
	s.stack = append(s.stack, u)
	row := s.g.adj[u]
	for x, ok := row.NextSet(0); ok; x, ok = row.NextSet(x + 1) {
		v := int(x)
		if s.num[v] != 0 {
			s.low[u] = min(s.low[u], s.num[v])
			continue
		}
		s.visit(v)
		s.low[u] = min(s.low[u], s.low[v])
		if s.low[v] < s.num[u] {
			continue
		}
		// u separates the subtree of v: pop it as one component.
		comp := vset.Of(s.g.n, u)
		for {
			w := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			comp.Set(uint(w))
			if w == v {
				break
			}
		}
		s.out = append(s.out, comp)
	}
}
