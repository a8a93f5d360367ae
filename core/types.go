// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. CloneEmpty does not copy it.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge (zero when unweighted).
	Weight int64

	// Directed mirrors the graph mode at insertion time.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed bool
	weighted bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to] = edge ID; undirected edges are mirrored.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default it is undirected and unweighted.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }
