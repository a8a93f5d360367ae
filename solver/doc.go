// SPDX-License-Identifier: MIT

// Package solver computes a minimum fill-in of a whole graph.
//
// The input is split into pieces whose optimal fills add up to the optimum
// of the whole graph, and only the pieces that are still not chordal reach
// the decomposer:
//
//  1. connected components;
//  2. biconnected components (splitting at cut points);
//  3. safe separators: clique minimal separators, minimal separators with a
//     single missing edge, and almost-clique separators whose missing edges
//     are witnessed by a matching of common neighbors or by vertex-disjoint
//     chordless paths. Non-clique safe separators are filled first and the
//     added edges are reported as safe fill;
//  4. atoms of the clique minimal separator decomposition;
//  5. a chordality test.
//
// Every piece is stripped of simplicial vertices before it is solved.
//
// Usage:
//
//	s := solver.New(solver.WithLogger(log))
//	res, err := s.Solve(ctx, g)
//	// res.Fill: sorted label pairs, res.Cost == len(res.Fill)
package solver
