// SPDX-License-Identifier: MIT
//
// api.go - BuildGraph orchestrator and the Constructor contract.
// Topology constructors live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// Constructor mutates g using the resolved config. Constructors validate
// parameters first, add vertices in index order and emit edges in a stable
// documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Steps:
//  1. Resolve options into one builderConfig.
//  2. Fail fast when a random weight function has no RNG.
//  3. Apply constructors in order; stop at the first error.
//
// Errors: ErrConstructFailed (nil constructor), ErrNeedRandSource (random
// weights without a seed), and any constructor sentinel.
// Complexity: sum of the constructors' costs. Panics only through option
// constructors, before BuildGraph runs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// 1) options
	cfg := newBuilderConfig(bopts...)

	// 2) rng precondition
	if cfg.weightNeedsRand && cfg.rng == nil {
		return nil, fmt.Errorf("BuildGraph: random weights: %w", ErrNeedRandSource)
	}

	// 3) constructors, no partial cleanup on failure
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers idFn(0..n-1). Complexity: O(n).
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge inserts u—v with the next configured weight and wraps core
// errors with the method tag. Complexity: O(1) amortized.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", method, u, v, w, err)
	}
	return nil
}
