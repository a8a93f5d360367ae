// SPDX-License-Identifier: MIT
//
// File: chordal.go
// Role: maximum cardinality search, chordality test, MCS-M minimal
// triangulation and clique-separator atoms.

package graph

import (
	"container/heap"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// mcsOrder returns the vertices in the order maximum cardinality search
// numbers them, last-numbered first. Ties go to the smallest vertex.
// Reversed, the order is a perfect elimination ordering iff G is chordal.
// Complexity: O(n²).
func (g *Graph) mcsOrder() []int {
	weight := make([]int, g.n)
	numbered := vset.New(g.n)
	order := make([]int, 0, g.n)
	for len(order) < g.n {
		best := -1
		for v := 0; v < g.n; v++ {
			if numbered.Test(uint(v)) {
				continue
			}
			if best < 0 || weight[v] > weight[best] {
				best = v
			}
		}
		numbered.Set(uint(best))
		order = append(order, best)
		row := g.adj[best]
		for w, ok := row.NextSet(0); ok; w, ok = row.NextSet(w + 1) {
			if !numbered.Test(w) {
				weight[w]++
			}
		}
	}

	return order
}

// IsChordal reports whether every cycle of length at least four has a chord.
//
// Steps:
//  1. Order the vertices by maximum cardinality search.
//  2. Walk the reverse order as an elimination ordering: for every vertex,
//     its later neighbors minus the earliest one (the parent) must be
//     adjacent to that parent.
//
// Complexity: O(n²·n/64).
func (g *Graph) IsChordal() bool {
	if g.n <= 3 {
		return true
	}
	order := g.mcsOrder()
	// order[0..i-1] are eliminated after order[i].
	after := vset.New(g.n)
	for i, v := range order {
		ln := g.adj[v].Intersection(after)
		if ln.Count() > 1 {
			// The parent is the later neighbor eliminated first.
			parent := -1
			for j := i - 1; j >= 0; j-- {
				if ln.Test(uint(order[j])) {
					parent = order[j]
					break
				}
			}
			ln.Clear(uint(parent))
			if !g.adj[parent].IsSuperSet(ln) {
				return false
			}
		}
		after.Set(uint(v))
	}

	return true
}

// MinimalTriangulation runs MCS-M and returns the vertex numbering alpha
// (alpha[i] is the vertex numbered i, numbers assigned from n-1 down) and
// the adjacency rows of the resulting minimal triangulation.
//
// When z is numbered, every unnumbered y reachable from z through unnumbered
// vertices all lighter than y gains weight and a fill edge zy. The lightest
// bottleneck to each y is found with a small Dijkstra on max-weights.
// Complexity: O(n·m·log n).
func (g *Graph) MinimalTriangulation() (alpha []int, filled []*bitset.BitSet) {
	filled = make([]*bitset.BitSet, g.n)
	for v := range filled {
		filled[v] = g.adj[v].Clone()
	}
	alpha = make([]int, g.n)
	weight := make([]int, g.n)
	numbered := vset.New(g.n)
	bottleneck := make([]int, g.n)

	for i := g.n - 1; i >= 0; i-- {
		z := -1
		for v := 0; v < g.n; v++ {
			if !numbered.Test(uint(v)) && (z < 0 || weight[v] > weight[z]) {
				z = v
			}
		}
		alpha[i] = z
		numbered.Set(uint(z))

		// bottleneck[y]: least possible max weight of an interior vertex on
		// a z..y path through unnumbered vertices (-1 when adjacent).
		for v := range bottleneck {
			bottleneck[v] = g.n + 1
		}
		pq := &minmaxQueue{}
		row := g.adj[z]
		for y, ok := row.NextSet(0); ok; y, ok = row.NextSet(y + 1) {
			if !numbered.Test(y) {
				bottleneck[y] = -1
				heap.Push(pq, minmaxItem{v: int(y), key: -1})
			}
		}
		var raise []int
		for pq.Len() > 0 {
			it := heap.Pop(pq).(minmaxItem)
			if it.key != bottleneck[it.v] {
				continue
			}
			y := it.v
			if it.key < weight[y] {
				raise = append(raise, y)
			}
			through := max(it.key, weight[y])
			nb := g.adj[y]
			for x, ok := nb.NextSet(0); ok; x, ok = nb.NextSet(x + 1) {
				if numbered.Test(x) || through >= bottleneck[x] {
					continue
				}
				bottleneck[x] = through
				heap.Push(pq, minmaxItem{v: int(x), key: through})
			}
		}
		for _, y := range raise {
			weight[y]++
			filled[z].Set(uint(y))
			filled[y].Set(uint(z))
		}
	}

	return alpha, filled
}

// CliqueSeparatorComponents decomposes G by clique minimal separators and
// returns the atoms: vertex sets whose induced subgraphs have no clique
// separator, each including the clique it was split off along.
//
// Steps:
//  1. Compute the MCS-M numbering and its minimal triangulation.
//  2. Scan vertices by increasing number; a vertex whose higher-numbered
//     filled neighbors C form a clique of G separates the component A of
//     B − C holding it from the rest whenever B − C − A is non-empty.
//  3. Emit A ∪ C and continue on B − A; what remains is the last atom.
func (g *Graph) CliqueSeparatorComponents() []*bitset.BitSet {
	var atoms []*bitset.BitSet
	if g.n == 0 {
		return atoms
	}
	alpha, filled := g.MinimalTriangulation()
	b := g.All()
	high := g.All()
	for i := 0; i < g.n; i++ {
		v := alpha[i]
		if !b.Test(uint(v)) {
			continue
		}
		high.Clear(uint(v))
		c := filled[v].Intersection(b)
		c.InPlaceIntersection(high)
		if !g.IsClique(c) {
			continue
		}
		a := g.componentContaining(v, b.Difference(c))
		if b.Difference(c).Difference(a).Any() {
			atoms = append(atoms, a.Union(c))
			b.InPlaceDifference(a)
		}
	}
	if b.Any() {
		atoms = append(atoms, b)
	}

	return atoms
}

func (g *Graph) componentContaining(v int, within *bitset.BitSet) *bitset.BitSet {
	for _, c := range g.ComponentsOf(within) {
		if c.Test(uint(v)) {
			return c
		}
	}

	return vset.New(g.n)
}

type minmaxItem struct {
	v, key int
}

type minmaxQueue []minmaxItem

func (q minmaxQueue) Len() int { return len(q) }
func (q minmaxQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}

	return q[i].v < q[j].v
}
func (q minmaxQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *minmaxQueue) Push(x any)   { *q = append(*q, x.(minmaxItem)) }
func (q *minmaxQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]

	return it
}
