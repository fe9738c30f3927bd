// SPDX-License-Identifier: MIT
//
// options.go - functional options for BuildGraph.
//
// Contract:
//   - Option constructors validate eagerly and PANIC on meaningless input
//     (nil functions, negative or empty weight ranges).
//   - Constructors never panic; they return sentinel errors.
//   - Later options override earlier ones for the same field.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes builderConfig before construction begins.
// Complexity: applying N options costs O(N).
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
// Complexity: O(1).
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		// fail at option build time, not mid-construction
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG; use it to freeze stochastic fixtures.
// Never panics. Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithConstantWeight gives every edge weight w. Panics on w < 0.
// Complexity: O(1).
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%d): negative weight", w))
	}
	return func(c *builderConfig) {
		c.weightFn = ConstantWeightFn(w)
		c.weightNeedsRand = false
	}
}

// WithUniformWeight draws weights uniformly from [min,max]; requires an RNG.
// Panics on min < 0 or max < min.
// Complexity: O(1); each draw is O(1).
func WithUniformWeight(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight(%d,%d): need 0 ≤ min ≤ max", min, max))
	}
	return func(c *builderConfig) {
		c.weightFn = UniformWeightFn(min, max)
		c.weightNeedsRand = true
	}
}
