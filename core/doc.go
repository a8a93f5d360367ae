// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, string-ID graph used at the edges of
// minfill: input graphs read by graphio and produced by builder, and the
// small directed capacity networks consumed by flow.
//
// A Graph G = (V,E) is configured once at construction:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Unweighted (default) or weighted edges (WithWeighted)
//
// Self-loops and parallel edges are never stored: AddEdge(v,v) returns
// ErrLoopNotAllowed and a second AddEdge(u,v) is a no-op that returns the
// existing edge ID. Both are exactly the semantics an edge-list instance of
// the fill-in problem needs.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards the edge catalog and
//	adjacency. All exported methods are safe for concurrent use.
//
// Determinism:
//
//	Vertices() and Neighbors() are sorted by ID and Edges() by allocation
//	order, so downstream index assignment (graph.FromCore) is reproducible.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – non-zero weight on an unweighted graph
//	ErrLoopNotAllowed – self-loop
package core
