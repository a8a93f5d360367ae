// SPDX-License-Identifier: MIT

// Package treedecomp holds tree decompositions produced by the decomposer,
// the fill edges they imply and a validator.
//
// Bags are numbered from 0 in insertion order. For a decomposition of G
// whose bags all become cliques, the union of G and those cliques is a
// chordal supergraph of G; ComputeFill lists the added edges.
package treedecomp

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/vset"
)

// Validation errors.
var (
	// ErrInvalidCoverage indicates a vertex that lies in no bag.
	ErrInvalidCoverage = errors.New("treedecomp: vertex not covered")

	// ErrInvalidEdge indicates an edge whose endpoints share no bag.
	ErrInvalidEdge = errors.New("treedecomp: edge not covered")

	// ErrInvalidSubtree indicates a vertex whose bags are not connected.
	ErrInvalidSubtree = errors.New("treedecomp: bags of vertex not connected")

	// ErrInvalidTree indicates that the bag adjacency is not a tree.
	ErrInvalidTree = errors.New("treedecomp: bag graph is not a tree")
)

// FillEdge is an added edge, named by vertex labels with U < V.
type FillEdge struct {
	U, V string
}

// TreeDecomposition is a tree whose nodes are bags of vertices.
type TreeDecomposition struct {
	n     int
	bags  [][]int
	sets  []*bitset.BitSet
	adj   [][]int
	edges int
}

// New returns an empty decomposition for a graph on n vertices.
func New(n int) *TreeDecomposition {
	return &TreeDecomposition{n: n}
}

// AddBag appends a bag and returns its index. Members are stored sorted.
func (td *TreeDecomposition) AddBag(bag *bitset.BitSet) int {
	td.bags = append(td.bags, vset.Slice(bag))
	td.sets = append(td.sets, bag.Clone())
	td.adj = append(td.adj, nil)

	return len(td.bags) - 1
}

// AddEdge joins bags i and j. Repeated edges are ignored.
func (td *TreeDecomposition) AddEdge(i, j int) {
	if slices.Contains(td.adj[i], j) {
		return
	}
	td.adj[i] = append(td.adj[i], j)
	td.adj[j] = append(td.adj[j], i)
	td.edges++
}

// Len returns the number of bags.
func (td *TreeDecomposition) Len() int { return len(td.bags) }

// Bags returns the bags as sorted vertex lists. The slices are shared.
func (td *TreeDecomposition) Bags() [][]int { return td.bags }

// Bag returns bag i as a set. The set is shared.
func (td *TreeDecomposition) Bag(i int) *bitset.BitSet { return td.sets[i] }

// Neighbors returns the bags adjacent to bag i.
func (td *TreeDecomposition) Neighbors(i int) []int { return td.adj[i] }

// Width returns the largest bag size minus one, or -1 without bags.
func (td *TreeDecomposition) Width() int {
	w := -1
	for _, b := range td.bags {
		w = max(w, len(b)-1)
	}

	return w
}

// ComputeFill returns the pairs inside some bag that are not edges of g,
// sorted by (U, V).
func (td *TreeDecomposition) ComputeFill(g *graph.Graph) []FillEdge {
	seen := make(map[FillEdge]struct{})
	for _, bag := range td.bags {
		for j, u := range bag {
			for _, v := range bag[j+1:] {
				if g.Adjacent(u, v) {
					continue
				}
				e := FillEdge{U: g.Label(u), V: g.Label(v)}
				if e.V < e.U {
					e.U, e.V = e.V, e.U
				}
				seen[e] = struct{}{}
			}
		}
	}
	out := make([]FillEdge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	SortFill(out)

	return out
}

// SortFill orders fill edges by (U, V).
func SortFill(edges []FillEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
}

// Validate checks that td is a tree decomposition of g.
//
// Steps:
//  1. The bag graph is a tree (connected, |edges| = |bags| - 1).
//  2. Every vertex lies in some bag and its bags induce a connected subtree.
//  3. Both ends of every edge share a bag.
func (td *TreeDecomposition) Validate(g *graph.Graph) error {
	nb := len(td.bags)
	if nb == 0 {
		if g.N() == 0 {
			return nil
		}

		return fmt.Errorf("treedecomp: Validate: vertex %d: %w", 0, ErrInvalidCoverage)
	}
	if td.edges != nb-1 || len(td.reach(0, nil)) != nb {
		return fmt.Errorf("treedecomp: Validate: %d bags, %d edges: %w", nb, td.edges, ErrInvalidTree)
	}

	for v := 0; v < g.N(); v++ {
		holding := vset.New(nb)
		for i, s := range td.sets {
			if s.Test(uint(v)) {
				holding.Set(uint(i))
			}
		}
		first := vset.Min(holding)
		if first < 0 {
			return fmt.Errorf("treedecomp: Validate: vertex %d: %w", v, ErrInvalidCoverage)
		}
		if uint(len(td.reach(first, holding))) != holding.Count() {
			return fmt.Errorf("treedecomp: Validate: vertex %d: %w", v, ErrInvalidSubtree)
		}
	}
	for v := 0; v < g.N(); v++ {
		row := g.Neighbors(v)
		for w, ok := row.NextSet(uint(v) + 1); ok; w, ok = row.NextSet(w + 1) {
			if !td.shareBag(v, int(w)) {
				return fmt.Errorf("treedecomp: Validate: edge %d-%d: %w", v, w, ErrInvalidEdge)
			}
		}
	}

	return nil
}

func (td *TreeDecomposition) shareBag(u, v int) bool {
	for _, s := range td.sets {
		if s.Test(uint(u)) && s.Test(uint(v)) {
			return true
		}
	}

	return false
}

// reach lists the bags reachable from start, moving only through bags in
// within (all bags when within is nil).
func (td *TreeDecomposition) reach(start int, within *bitset.BitSet) []int {
	seen := map[int]bool{start: true}
	stack := []int{start}
	out := []int{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range td.adj[b] {
			if seen[c] || (within != nil && !within.Test(uint(c))) {
				continue
			}
			seen[c] = true
			stack = append(stack, c)
			out = append(out, c)
		}
	}

	return out
}

// WriteTo writes td in the PACE ".td" text format, with 1-based bag and
// vertex numbers.
func (td *TreeDecomposition) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "s td %d %d %d\n", len(td.bags), td.Width()+1, td.n)
	for i, bag := range td.bags {
		fmt.Fprintf(&sb, "b %d", i+1)
		for _, v := range bag {
			fmt.Fprintf(&sb, " %d", v+1)
		}
		sb.WriteByte('\n')
	}
	for i, nbrs := range td.adj {
		for _, j := range nbrs {
			if i < j {
				fmt.Fprintf(&sb, "%d %d\n", i+1, j+1)
			}
		}
	}
	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}
