// SPDX-License-Identifier: MIT

// Package graph provides the indexed, bit-vector graph that every minfill
// algorithm runs on.
//
// Vertices are the integers 0..N()-1; each carries a string label. NewLabeled
// and FromCore number vertices by ascending label; New labels vertex i "i".
// Adjacency is stored twice: as *bitset.BitSet rows for set algebra, and
// implicitly as the rows' members for iteration.
//
// What it offers:
//
//   - Mutation: AddEdge, RemoveEdge, AddEdgeBetween (by label)
//   - Neighborhoods: Neighbors, NeighborSetOf, ClosedNeighborSet, ClosedNeighborSetOf
//   - Components: Components, ComponentsOf, FullComponents
//   - Fill counting: CountFill (missing edges inside S), CountFillBetween (missing X×Y edges)
//   - Structure: IsClique, IsChordal (maximum cardinality search),
//     BiconnectedComponents (cut points), CliqueSeparatorComponents (MCS-M atoms)
//   - Conversion: Induced, FromCore, ToCore
//
// Sets handed out by Neighbors are the graph's own rows; callers must clone
// before mutating. Every other method returns a fresh set.
//
// A Graph is not safe for concurrent mutation. Edges may change between
// algorithm runs, never during one.
package graph
