// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) constructor (K_n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Edges (i,j), i<j, are emitted in lexicographic index order.
//   - Never panics.
//
// Complexity:
//   - Time: O(n²) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n (n ≥ 1) with edges (i,j), i<j, in lexicographic
// index order. For even n every vertex is odd, which makes K_n the
// worst case for the matching stage.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// 2) vertices
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		// 3) upper triangle, row by row
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
