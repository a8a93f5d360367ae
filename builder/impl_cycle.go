// SPDX-License-Identifier: MIT
//
// File: impl_cycle.go
// Role: Cycle, Path and Wheel.

package builder

import "github.com/katalvlaran/minfill/core"

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodWheel = "Wheel"

	minCycleNodes = 3
	minPathNodes  = 2
	minWheelNodes = 4

	// CenterVertexID is the hub of Wheel.
	CenterVertexID = "Center"
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3), edges
// i–(i+1) mod n in ascending i.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}

		return ring(methodCycle, g, cfg, n)
	}
}

// Path returns a Constructor for the path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a rim C_{n-1} plus CenterVertexID
// joined to every rim vertex (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := ring(methodWheel, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodWheel, g, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

func ring(method string, g *core.Graph, cfg builderConfig, n int) error {
	ids, err := addVertices(method, g, cfg, n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := addEdge(method, g, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
