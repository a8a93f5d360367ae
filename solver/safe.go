// SPDX-License-Identifier: MIT
//
// File: safe.go
// Role: safe separator detection and safe filling.

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/treedecomp"
	"github.com/katalvlaran/minfill/vset"
)

// safeSeparator returns a minimal separator of g along which some minimum
// fill-in splits, after filling it, or nil when none is found.
//
// Candidates are the separators N(C) for the components C of G − N(u) that
// do not contain u; each is minimal since both C and {u} are full.
//
// Steps:
//  1. First pass: accept a clique, or a separator missing exactly one edge.
//  2. Second pass: accept an almost-clique separator S = K + x whose missing
//     edges xy are witnessed inside C (see almostCliqueSafe).
func (r *run) safeSeparator(g *graph.Graph) (*bitset.BitSet, error) {
	for u := 0; u < g.N(); u++ {
		for _, c := range g.Components(g.Neighbors(u)) {
			if c.Test(uint(u)) {
				continue
			}
			sep := g.NeighborSetOf(c)
			switch g.CountFill(sep) {
			case 0:
				return sep, nil
			case 1:
				r.fillSeparator(g, sep)

				return sep, nil
			}
		}
	}

	for u := 0; u < g.N(); u++ {
		for _, c := range g.Components(g.Neighbors(u)) {
			if c.Test(uint(u)) {
				continue
			}
			ok, err := r.almostCliqueSafe(g, c)
			if err != nil {
				return nil, err
			}
			if ok {
				sep := g.NeighborSetOf(c)
				r.fillSeparator(g, sep)

				return sep, nil
			}
		}
	}

	return nil, nil
}

// almostCliqueSafe reports whether S = N(a) may be filled safely, where
// S − x is a clique for some x ∈ S. With Y the non-neighbors of x in S, the
// edges xy are safe when either
//
//   - the y ∈ Y can be matched to distinct common neighbors of x and y in a,
//     or
//   - there are pairwise disjoint chordless paths from x to every y ∈ Y
//     through a.
//
// A max-flow count of vertex-disjoint x..Y paths rules out the second case
// before the paths are searched for.
func (r *run) almostCliqueSafe(g *graph.Graph, a *bitset.BitSet) (bool, error) {
	sep := g.NeighborSetOf(a)
	missing := g.CountFill(sep)
	if missing == 0 {
		return true, nil
	}

	x := -1
	rest := sep.Clone()
	for v, ok := sep.NextSet(0); ok; v, ok = sep.NextSet(v + 1) {
		rest.Clear(v)
		if g.IsClique(rest) {
			x = int(v)
			break
		}
		rest.Set(v)
	}
	if x < 0 {
		return false, nil
	}
	ys := rest.Difference(g.Neighbors(x))

	matched, err := commonNeighborMatching(r.ctx, g, x, ys, a)
	if err != nil {
		return false, err
	}
	if matched == missing {
		return true, nil
	}

	paths, err := disjointPaths(r.ctx, g, x, ys, a)
	if err != nil {
		return false, err
	}
	if paths < int(ys.Count()) {
		return false, nil
	}

	within := a.Union(ys)
	for y, ok := ys.NextSet(0); ok; y, ok = ys.NextSet(y + 1) {
		p := chordlessPath(g, within, x, int(y))
		if p == nil {
			return false, nil
		}
		within.InPlaceDifference(p)
	}

	return true, nil
}

// chordlessPath returns the vertices of a shortest x..y path inside within,
// x excluded, or nil when y is unreachable. A shortest path is induced.
func chordlessPath(g *graph.Graph, within *bitset.BitSet, x, y int) *bitset.BitSet {
	prev := make([]int, g.N())
	for i := range prev {
		prev[i] = -1
	}
	prev[x] = x
	queue := []int{x}
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		next := within.Intersection(g.Neighbors(v))
		for w, ok := next.NextSet(0); ok; w, ok = next.NextSet(w + 1) {
			if prev[w] != -1 {
				continue
			}
			prev[w] = v
			if int(w) == y {
				path := vset.New(g.N())
				for z := y; prev[z] != z; z = prev[z] {
					path.Set(uint(z))
				}

				return path
			}
			queue = append(queue, int(w))
		}
	}

	return nil
}

// fillSeparator makes sep a clique and records the added edges.
func (r *run) fillSeparator(g *graph.Graph, sep *bitset.BitSet) {
	for _, e := range g.MissingEdges(sep) {
		g.AddEdge(e[0], e[1])
		fe := treedecomp.FillEdge{U: g.Label(e[0]), V: g.Label(e[1])}
		if fe.V < fe.U {
			fe.U, fe.V = fe.V, fe.U
		}
		r.fill[fe] = struct{}{}
		r.safe++
	}
}
