// SPDX-License-Identifier: MIT
//
// impl_random.go - RandomConnected(n, p) and Parallel(u, v, k).
//
// Contract:
//   - RandomConnected needs n ≥ 1, p in [0,1] and an RNG (WithSeed/WithRand).
//   - The result is always connected: a random spanning tree comes first.
//   - Parallel only touches vertices that already exist.
//   - Never panics.
//
// Complexity:
//   - RandomConnected: O(n²) RNG draws, O(n + m) edges.
//   - Parallel: O(k).
//
// Determinism:
//   - RNG draws happen in a fixed order (tree, then pairs by (i,j)), so a
//     seed fully determines the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodRandomConnected = "RandomConnected"
	methodParallel        = "Parallel"
	minRandomNodes        = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomConnected builds a connected random graph on n vertices:
//  1. a random spanning tree (vertex i attaches to a uniform j < i);
//  2. every other pair (i,j), i<j, is added with probability p.
//
// Requires an RNG (WithSeed/WithRand).
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate parameters and the RNG
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) vertices
		if err := addVertices(methodRandomConnected, g, cfg, n); err != nil {
			return err
		}

		// 3) spanning tree: vertex i attaches to a uniform j < i
		tree := make(map[[2]int]bool, n)
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			tree[[2]int{j, i}] = true
			if err := addEdge(methodRandomConnected, g, cfg, cfg.idFn(j), cfg.idFn(i)); err != nil {
				return err
			}
		}

		// 4) extra pairs with probability p; tree pairs draw nothing
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if tree[[2]int{i, j}] || cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomConnected, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Parallel adds k more copies of the pair idFn(u)—idFn(v). Apply it after
// the constructor that created the vertices.
//
// Steps:
//  1. Validate k and both endpoints.
//  2. Pick the weight once: the pair's stored weight when an edge already
//     exists, otherwise the next configured weight.
//  3. Insert k copies with that weight, so TotalWeight stays equal to
//     Σ Count·Weight over Edges().
//
// Errors: ErrTooFewVertices (k < 1), ErrConstructFailed (unknown endpoint),
// core errors from AddEdge.
// Complexity: O(k). Never panics.
func Parallel(u, v, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) validate
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodParallel, k, ErrTooFewVertices)
		}
		a, b := cfg.idFn(u), cfg.idFn(v)
		if !g.HasVertex(a) || !g.HasVertex(b) {
			return fmt.Errorf("%s: %s—%s: %w", methodParallel, a, b, ErrConstructFailed)
		}

		// 2) one weight for every copy
		w, err := g.Weight(a, b)
		if err != nil {
			w = cfg.weight()
		}

		// 3) insert
		for range k {
			if err = g.AddEdge(a, b, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", methodParallel, a, b, w, err)
			}
		}
		return nil
	}
}
