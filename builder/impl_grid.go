// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - IDs are "r,c" in row-major order; WithIDScheme does not apply.
//   - Per cell, the right edge is emitted before the down edge.
//   - Never panics.
//
// Complexity:
//   - Time: O(rows·cols).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// Grid builds a rows×cols 4-neighborhood lattice. Border cells of a grid
// larger than 2×2 have degree 3 (corners excepted), which models a street
// block plan.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate both dimensions
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		// 2) vertices in row-major order
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id(r, c), err)
				}
			}
		}

		// 3) right then down for each cell, skipping the far borders
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
