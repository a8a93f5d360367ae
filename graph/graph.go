// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph type, construction and edge mutation.

package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// Sentinel errors.
var (
	// ErrUnknownLabel is returned when a label does not name a vertex.
	ErrUnknownLabel = errors.New("graph: unknown label")

	// ErrDuplicateLabel is returned by NewLabeled on repeated labels.
	ErrDuplicateLabel = errors.New("graph: duplicate label")

	// ErrDirected is returned by FromCore for directed inputs.
	ErrDirected = errors.New("graph: directed graph not supported")
)

// Graph is a simple undirected graph on vertices 0..n-1.
type Graph struct {
	n      int
	adj    []*bitset.BitSet
	labels []string
	index  map[string]int
	all    *bitset.BitSet
}

// New returns an edgeless graph on n vertices labelled by their decimal
// index.
func New(n int) *Graph {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return newGraph(labels)
}

// NewLabeled returns an edgeless graph whose vertices carry labels, sorted
// ascending. The input slice is not retained.
func NewLabeled(labels []string) (*Graph, error) {
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("graph: NewLabeled %q: %w", sorted[i], ErrDuplicateLabel)
		}
	}

	return newGraph(sorted), nil
}

func newGraph(labels []string) *Graph {
	n := len(labels)
	g := &Graph{
		n:      n,
		adj:    make([]*bitset.BitSet, n),
		labels: labels,
		index:  make(map[string]int, n),
		all:    vset.Full(n),
	}
	for i, l := range labels {
		g.index[l] = i
	}
	for i := range g.adj {
		g.adj[i] = vset.New(n)
	}

	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Label returns the label of v.
func (g *Graph) Label(v int) string { return g.labels[v] }

// Labels returns a copy of all labels in vertex order.
func (g *Graph) Labels() []string { return append([]string(nil), g.labels...) }

// IndexOf returns the vertex carrying label, or -1.
func (g *Graph) IndexOf(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}

	return -1
}

// All returns a fresh copy of {0..n-1}.
func (g *Graph) All() *bitset.BitSet { return g.all.Clone() }

// AddEdge inserts {u,v}. Self-loops are ignored.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.adj[u].Set(uint(v))
	g.adj[v].Set(uint(u))
}

// AddEdgeBetween inserts the edge between two labelled vertices.
func (g *Graph) AddEdgeBetween(u, v string) error {
	ui, vi := g.IndexOf(u), g.IndexOf(v)
	if ui < 0 {
		return fmt.Errorf("graph: AddEdgeBetween %q: %w", u, ErrUnknownLabel)
	}
	if vi < 0 {
		return fmt.Errorf("graph: AddEdgeBetween %q: %w", v, ErrUnknownLabel)
	}
	g.AddEdge(ui, vi)

	return nil
}

// RemoveEdge deletes {u,v} if present.
func (g *Graph) RemoveEdge(u, v int) {
	g.adj[u].Clear(uint(v))
	g.adj[v].Clear(uint(u))
}

// Adjacent reports whether {u,v} is an edge.
func (g *Graph) Adjacent(u, v int) bool { return g.adj[u].Test(uint(v)) }

// Neighbors returns N(v). The set is owned by the graph.
func (g *Graph) Neighbors(v int) *bitset.BitSet { return g.adj[v] }

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) int { return int(g.adj[v].Count()) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	sum := 0
	for _, row := range g.adj {
		sum += int(row.Count())
	}

	return sum / 2
}

// Clone returns an independent copy.
func (g *Graph) Clone() *Graph {
	c := newGraph(append([]string(nil), g.labels...))
	for v, row := range g.adj {
		c.adj[v] = row.Clone()
	}

	return c
}
