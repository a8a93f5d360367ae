// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: unit-capacity flow networks for matchings and vertex-disjoint paths.

package solver

import (
	"context"
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/core"
	"github.com/katalvlaran/minfill/flow"
	"github.com/katalvlaran/minfill/graph"
)

const (
	source = "s"
	sink   = "t"
)

// terminals holds only source and sink; every network starts as a copy.
var terminals = func() *core.Graph {
	n := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = n.AddVertex(source)
	_ = n.AddVertex(sink)

	return n
}()

func newNetwork() *core.Graph { return terminals.CloneEmpty() }

func node(prefix string, v uint) string {
	return prefix + strconv.FormatUint(uint64(v), 10)
}

func maxFlow(ctx context.Context, n *core.Graph) (int, error) {
	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	value, _, err := flow.Dinic(n, source, sink, opts)

	return int(value), err
}

// commonNeighborMatching returns the size of a maximum matching of the
// vertices of ys to distinct vertices of a adjacent to both x and them.
func commonNeighborMatching(ctx context.Context, g *graph.Graph, x int, ys, a *bitset.BitSet) (int, error) {
	n := newNetwork()
	common := a.Intersection(g.Neighbors(x))
	for y, ok := ys.NextSet(0); ok; y, ok = ys.NextSet(y + 1) {
		yn := node("y", y)
		_, _ = n.AddEdge(source, yn, 1)
		cand := common.Intersection(g.Neighbors(int(y)))
		for c, ok := cand.NextSet(0); ok; c, ok = cand.NextSet(c + 1) {
			cn := node("a", c)
			_, _ = n.AddEdge(yn, cn, 1)
			_, _ = n.AddEdge(cn, sink, 1)
		}
	}

	return maxFlow(ctx, n)
}

// disjointPaths returns the maximum number of paths from x to distinct
// targets in ys that share no vertex besides x and run through a.
// Every vertex v of ys ∪ a is split into in(v)→out(v) with capacity 1.
func disjointPaths(ctx context.Context, g *graph.Graph, x int, ys, a *bitset.BitSet) (int, error) {
	n := newNetwork()
	nodes := ys.Union(a)
	for v, ok := nodes.NextSet(0); ok; v, ok = nodes.NextSet(v + 1) {
		_, _ = n.AddEdge(node("in", v), node("out", v), 1)
	}
	first := nodes.Intersection(g.Neighbors(x))
	for v, ok := first.NextSet(0); ok; v, ok = first.NextSet(v + 1) {
		_, _ = n.AddEdge(source, node("in", v), 1)
	}
	for v, ok := ys.NextSet(0); ok; v, ok = ys.NextSet(v + 1) {
		out := node("out", v)
		next := a.Intersection(g.Neighbors(int(v)))
		for w, ok := next.NextSet(0); ok; w, ok = next.NextSet(w + 1) {
			_, _ = n.AddEdge(out, node("in", w), 1)
		}
		_, _ = n.AddEdge(out, sink, 1)
	}
	for v, ok := a.NextSet(0); ok; v, ok = a.NextSet(v + 1) {
		out := node("out", v)
		next := nodes.Intersection(g.Neighbors(int(v)))
		for w, ok := next.NextSet(0); ok; w, ok = next.NextSet(w + 1) {
			_, _ = n.AddEdge(out, node("in", w), 1)
		}
	}

	return maxFlow(ctx, n)
}
