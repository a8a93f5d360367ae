// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph constructors for fixtures,
// benchmarks and the `minfill gen` command.
//
// Constructors are composed with BuildGraph and configured through
// functional options:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.ChordalMinus(30, 5))
//
// Topologies:
//   - Cycle, Path, Complete, Wheel, Grid: fixed shapes with known minimum
//     fill (C_n: n-3, W_n: n-4, chordal shapes: 0).
//   - RandomSparse, RandomTree: seeded random graphs.
//   - ChordalMinus: a random chordal graph with k edges removed; its
//     minimum fill is at most k.
//
// Guarantees:
//   - Same options, seed and constructor order give identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the method name, and never panic.
package builder
