// SPDX-License-Identifier: MIT

// Package bounds estimates how many fill edges a (sub)graph needs at least.
//
// The estimate sums, over a greedy family of chordless cycles, the length of
// each cycle minus three: a chordless k-cycle needs k-3 chords before it is
// triangulated. Once a cycle is counted, all of its non-consecutive vertex
// pairs are treated as chords, so later cycles cannot be counted through
// the same vertices again. The result never overestimates the minimum
// fill-in, and the search is depth-limited so its cost stays predictable.
package bounds

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/vset"
)

// DefaultMaxCycleLength bounds the length of chordless cycles searched for.
const DefaultMaxCycleLength = 8

// Option configures a Bounds estimator.
type Option func(*Bounds)

// WithMaxCycleLength sets the longest chordless cycle the search tries to
// close. Panics if k < 4, since no shorter cycle forces fill.
func WithMaxCycleLength(k int) Option {
	if k < 4 {
		panic("bounds: WithMaxCycleLength(k): k must be >= 4")
	}

	return func(b *Bounds) { b.maxCycle = k }
}

// Bounds computes lower and trivial upper bounds on the fill-in of g.
// A Bounds value reuses scratch state and is not safe for concurrent use.
type Bounds struct {
	g        *graph.Graph
	maxCycle int

	vertices *bitset.BitSet
	nbr      []*bitset.BitSet // adjacency restricted to vertices
	chord    []*bitset.BitSet // nbr plus synthetic chords of counted cycles
	path     []int
	lb       int
}

// New returns an estimator for g.
func New(g *graph.Graph, opts ...Option) *Bounds {
	b := &Bounds{
		g:        g,
		maxCycle: DefaultMaxCycleLength,
		nbr:      make([]*bitset.BitSet, g.N()),
		chord:    make([]*bitset.BitSet, g.N()),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.path = make([]int, b.maxCycle)

	return b
}

// Lowerbound returns a lower bound on the minimum fill-in of the whole graph.
func (b *Bounds) Lowerbound() int {
	return b.LowerboundOf(b.g.All(), vset.New(b.g.N()))
}

// LowerboundOf returns a lower bound on the fill needed inside
// component ∪ separator once separator has been turned into a clique.
//
// Steps:
//  1. Restrict adjacency to component ∪ separator and complete separator.
//  2. For every vertex v ascending, search chordless cycles through v using
//     only vertices above v, so each cycle is met from its smallest vertex.
//
// Complexity: exponential in the cycle length limit, O(n·Δ^(k-1)) worst case.
func (b *Bounds) LowerboundOf(component, separator *bitset.BitSet) int {
	b.restrict(component, separator)
	b.lb = 0
	available := b.vertices.Clone()
	for v, ok := b.vertices.NextSet(0); ok; v, ok = b.vertices.NextSet(v + 1) {
		available.Clear(v)
		b.path[0] = int(v)
		b.search(int(v), 1, available.Clone())
	}

	return b.lb
}

// Upperbound returns the number of non-edges, the fill of completing g.
func (b *Bounds) Upperbound() int {
	n := b.g.N()

	return n*(n-1)/2 - b.g.EdgeCount()
}

func (b *Bounds) restrict(component, separator *bitset.BitSet) {
	b.vertices = component.Union(separator)
	for v, ok := b.vertices.NextSet(0); ok; v, ok = b.vertices.NextSet(v + 1) {
		row := b.g.Neighbors(int(v)).Intersection(b.vertices)
		if separator.Test(v) {
			row.InPlaceUnion(separator)
		}
		row.Clear(v)
		b.nbr[v] = row
		b.chord[v] = row.Clone()
	}
}

// search extends path[0..i-1] and reports whether a cycle was counted at
// depth four or more. available is restored before returning.
func (b *Bounds) search(v, i int, available *bitset.BitSet) bool {
	last := b.path[i-1]
	if i >= 4 && b.nbr[last].Test(uint(v)) {
		b.lb += i - 3
		for j := 0; j < i; j++ {
			x := b.path[j]
			for k := j + 2; k < i; k++ {
				y := b.path[k]
				b.chord[x].Set(uint(y))
				b.chord[y].Set(uint(x))
			}
		}

		return true
	}
	if i == b.maxCycle {
		return false
	}
	if i >= 3 && b.chord[last].Test(uint(v)) {
		return false
	}

	candidates := available.Intersection(b.nbr[last])
	for w, ok := candidates.NextSet(0); ok; w, ok = candidates.NextSet(w + 1) {
		b.path[i] = int(w)
		available.Clear(w)
		var blocked *bitset.BitSet
		if i >= 2 {
			blocked = available.Intersection(b.chord[last])
			available.InPlaceDifference(blocked)
		}

		found := b.search(v, i+1, available)

		if blocked != nil {
			available.InPlaceUnion(blocked)
		}
		available.Set(w)
		if i >= 3 && found {
			return true
		}
	}

	return false
}
