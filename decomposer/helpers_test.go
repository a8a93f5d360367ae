// SPDX-License-Identifier: MIT

package decomposer_test

import (
	"math/rand"

	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/treedecomp"
)

func fromEdges(n int, edges [][2]int) *graph.Graph {
	g := graph.New(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}

func cycle(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g
}

func randomGraph(rng *rand.Rand, n int, p float64) *graph.Graph {
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			if rng.Float64() < p {
				g.AddEdge(u, w)
			}
		}
	}

	return g
}

// completed returns g plus the fill edges implied by td.
func completed(g *graph.Graph, td *treedecomp.TreeDecomposition) *graph.Graph {
	h := g.Clone()
	for _, e := range td.ComputeFill(g) {
		h.AddEdge(g.IndexOf(e.U), g.IndexOf(e.V))
	}

	return h
}
