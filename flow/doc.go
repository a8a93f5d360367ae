// SPDX-License-Identifier: MIT

// Package flow computes maximum flows on *core.Graph networks with Dinic's
// algorithm. minfill uses it to count vertex-disjoint paths when deciding
// whether an almost-clique separator may be filled safely.
//
// # Graph Support
//
// Edge weights are capacities (int64). Directed edges carry capacity in
// their direction only; undirected edges carry it both ways. Zero
// capacities are ignored and negative ones are rejected with an EdgeError.
//
// # API
//
//	opts := flow.DefaultOptions()
//	value, residual, err := flow.Dinic(g, "s", "t", opts)
//
// The residual graph is directed and weighted: one edge u→v for every
// positive remaining capacity, including the reverse capacity created by
// the flow itself.
//
// # Errors
//
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSameEndpoints  - source and sink are the same vertex.
//	EdgeError         - a negative capacity was found.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx ended.
package flow
