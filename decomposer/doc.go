// SPDX-License-Identifier: MIT

// Package decomposer computes a minimum fill-in of a graph together with a
// tree decomposition whose bags, once completed to cliques, realize it.
//
// The search is a dynamic program over potential maximal cliques (PMCs) and
// the minimal separators between them:
//
//   - A block is a connected component C of G − S with S = N(C). Blocks are
//     memoized per Decomposer; they depend on the graph only.
//   - A PMC is a candidate bag. Relative to the rest of the graph it has at
//     most one outbound block and any number of inbound blocks.
//   - When every inbound block of a PMC has a known optimal cost and the
//     PMC's total fits the current target cost, the PMC is endorsed: the
//     vertices it covers away from its outbound block form a solved block
//     (an M-block) with that exact cost.
//   - Solved blocks are combined into partial separators (T-blocks), which
//     are indexed by their open side in a blocksieve.Sieve and extended into
//     new PMCs.
//
// Costs are discovered in increasing order: every M-block created while the
// target cost is t costs exactly t. The first PMC without an outbound block
// that is endorsed is the root bag of an optimal decomposition.
//
// Decompose(-1) searches for the optimum, raising a trial upper bound on the
// fill whenever a round ends without a solution. Decompose(b) with b >= 0
// runs one round with bound b and returns ErrInfeasible if the minimum fill
// exceeds b.
//
// A Decomposer is single-threaded. Independent instances may run in
// parallel on different graphs.
package decomposer
