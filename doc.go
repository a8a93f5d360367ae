// SPDX-License-Identifier: MIT

// Package minfill computes exact minimum fill-ins: the fewest edges whose
// addition makes an undirected graph chordal, together with an optimal
// tree decomposition.
//
// The work is split into subpackages:
//
//	vset/        bit-vector vertex sets and their canonical keys
//	core/        thread-safe string-ID graph used for input and flow networks
//	graph/       indexed bit-vector graph: fill counts, components, chordality
//	bounds/      chordless-cycle lower bound on the fill of a component
//	blocksieve/  superset index over vertex sets
//	treedecomp/  tree decompositions, their fill and validation
//	decomposer/  exact potential-maximal-clique dynamic program
//	flow/        Dinic max-flow over core graphs
//	solver/      splitting into independent pieces, then the decomposer
//	builder/     graph generators for fixtures and benchmarks
//	graphio/     edge-list reader and fill writer
//	logging/     slog wrapper
//	config/      YAML and environment configuration of the command
//	cmd/minfill  command line: solve, gen, version
//
// A square needs one chord:
//
//	a───b
//	│   │
//	d───c      minfill solve  →  "a c"
//
// Typical library use:
//
//	g, _ := graphio.ReadGraph(r)
//	res, err := solver.New().Solve(ctx, g)
//	// res.Fill holds the added edges, res.Cost their number.
package minfill
