// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete and Grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/minfill/core"
)

const (
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minCompleteNodes = 1
	minGridDim       = 1
	gridIDFmt        = "%d,%d"
)

// Complete returns a Constructor for K_n (n ≥ 1), edges in lexicographic
// index order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for the rows×cols orthogonal grid. Vertex IDs
// are "r,c" regardless of the ID scheme. Every cell emits its right, then
// its bottom edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(methodGrid, g, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
