// SPDX-License-Identifier: MIT
//
// File: impl_random.go
// Role: RandomSparse, RandomTree and ChordalMinus.

package builder

import (
	"fmt"

	"github.com/katalvlaran/minfill/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
	methodChordalMinus = "ChordalMinus"

	minRandomNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi graph G(n, p):
// every pair i<j, in ascending (i, j) order, becomes an edge with
// probability p. The RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor for a random recursive tree: vertex i > 0
// is joined to a uniformly chosen vertex below it.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomTree, "n", n, minRandomNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		ids, err := addVertices(methodRandomTree, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodRandomTree, g, ids[i], ids[cfg.rng.Intn(i)]); err != nil {
				return err
			}
		}

		return nil
	}
}

// ChordalMinus returns a Constructor for a random connected chordal graph on
// n vertices with k of its edges removed afterwards. The minimum fill of
// the result is at most k.
//
// Steps:
//  1. Vertex i > 0 picks a parent p < i and joins p together with a random
//     subset of the clique p was attached to. Every vertex is simplicial
//     when the vertices are removed from n-1 down to 0, so the graph is
//     chordal.
//  2. All edges are inserted, then k distinct ones among those not already
//     in g, chosen uniformly, are removed.
func ChordalMinus(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodChordalMinus, "n", n, minRandomNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodChordalMinus, ErrNeedRandSource)
		}
		rng := cfg.rng
		attached := make([][]int, n)
		var edges [][2]int
		for i := 1; i < n; i++ {
			p := rng.Intn(i)
			clique := []int{p}
			for _, q := range attached[p] {
				if rng.Intn(2) == 0 {
					clique = append(clique, q)
				}
			}
			attached[i] = clique
			for _, q := range clique {
				edges = append(edges, [2]int{q, i})
			}
		}
		if k < 0 || k > len(edges) {
			return fmt.Errorf("%s: k=%d with %d edges: %w", methodChordalMinus, k, len(edges), ErrInvalidRemoval)
		}

		ids, err := addVertices(methodChordalMinus, g, cfg, n)
		if err != nil {
			return err
		}
		// Only edges this constructor inserts may be removed again.
		var fresh []string
		for _, e := range edges {
			u, v := ids[e[0]], ids[e[1]]
			isNew := !g.HasEdge(u, v)
			eid, err := g.AddEdge(u, v, 0)
			if err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodChordalMinus, u, v, err)
			}
			if isNew {
				fresh = append(fresh, eid)
			}
		}
		rng.Shuffle(len(fresh), func(a, b int) { fresh[a], fresh[b] = fresh[b], fresh[a] })
		for _, eid := range fresh[:min(k, len(fresh))] {
			if err := g.RemoveEdge(eid); err != nil {
				return fmt.Errorf("%s: RemoveEdge(%s): %w", methodChordalMinus, eid, err)
			}
		}

		return nil
	}
}
