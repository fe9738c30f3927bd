// SPDX-License-Identifier: MIT
//
// impl_ring.go - Cycle(n) and Path(n) constructors.
//
// Contract:
//   - Cycle needs n ≥ 3, Path needs n ≥ 2 (else ErrTooFewVertices).
//   - Vertices are added via cfg.idFn in ascending index order (0..n-1).
//   - Edges are emitted as i—(i+1) for ascending i; Cycle closes with (n-1)—0.
//   - Returns only wrapped sentinel or core errors; never panics.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed IDs, fixed emission order, weights fixed by cfg.rng's seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// File-local method tags and minimums.
const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle builds C_n (n ≥ 3): edges i—(i+1) mod n for i ascending.
// Every vertex has degree 2, so the postman cost equals the edge sum.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate the size before touching g
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// 2) vertices 0..n-1
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}

		// 3) ring edges; i == n-1 wraps to 0
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path builds P_n (n ≥ 2): edges i—(i+1) for i in [0,n-2].
// Both ends are odd, so the solver walks the path twice.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// 2) vertices
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}

		// 3) n-1 consecutive edges, no wrap
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
