// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star needs n ≥ 2, Wheel needs n ≥ 4 (else ErrTooFewVertices).
//   - idFn(0) is the center (Star) or hub (Wheel); 1..n-1 are leaves or rim.
//   - Spokes are emitted first in ascending leaf index; Wheel then closes the
//     rim as (1+i)—(1+(i+1) mod (n-1)).
//   - Never panics.
//
// Complexity:
//   - Time: O(n) for both.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star builds a star with center idFn(0) and leaves idFn(1..n-1) (n ≥ 2).
// Every leaf is odd; the center is odd when n-1 is.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// 2) vertices, center first
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}

		// 3) spokes center—leaf
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, center, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds W_n (n ≥ 4): hub idFn(0), rim idFn(1..n-1) closed into a
// cycle. Spokes are emitted first, then rim edges.
// Rim vertices have degree 3 and are always odd.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// 2) vertices, hub first
		if err := addVertices(methodWheel, g, cfg, n); err != nil {
			return err
		}

		// 3) spokes
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		// 4) rim cycle over indices 1..n-1
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(methodWheel, g, cfg, cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim)); err != nil {
				return err
			}
		}
		return nil
	}
}
