// SPDX-License-Identifier: MIT

// Package fillcheck holds slow reference computations the package tests
// compare the solver against. It is not meant for production use.
package fillcheck

import (
	"math/bits"

	"github.com/katalvlaran/minfill/graph"
)

// MaxVertices is the largest graph MinFill accepts.
const MaxVertices = 16

// MinFill returns the minimum fill-in of g by dynamic programming over
// elimination orderings. A triangulation's edges are the pairs (v, x) where
// x lies outside the already eliminated set S and is reachable from v
// through S; the fill is their count minus |E|.
// Complexity: O(2^n · n²). Panics for graphs above MaxVertices.
func MinFill(g *graph.Graph) int {
	n := g.N()
	if n > MaxVertices {
		panic("fillcheck: MinFill: graph too large")
	}
	adj := make([]uint32, n)
	for v := 0; v < n; v++ {
		for w := 0; w < n; w++ {
			if g.Adjacent(v, w) {
				adj[v] |= 1 << w
			}
		}
	}
	full := uint32(1)<<n - 1
	best := make([]int, 1<<n)
	for s := int(full); s >= 0; s-- {
		if uint32(s) == full {
			continue
		}
		best[s] = -1
		for v := 0; v < n; v++ {
			if uint32(s)&(1<<v) != 0 {
				continue
			}
			q := reach(adj, uint32(s), v)
			c := bits.OnesCount32(q) + best[s|1<<v]
			if best[s] < 0 || c < best[s] {
				best[s] = c
			}
		}
	}

	return best[0] - g.EdgeCount()
}

// reach returns the vertices outside s ∪ {v} reachable from v through s.
func reach(adj []uint32, s uint32, v int) uint32 {
	seen := uint32(1) << v
	frontier := seen
	var out uint32
	for frontier != 0 {
		var next uint32
		for f := frontier; f != 0; f &= f - 1 {
			next |= adj[bits.TrailingZeros32(f)]
		}
		next &^= seen
		seen |= next
		out |= next &^ s
		frontier = next & s
	}

	return out
}
