// SPDX-License-Identifier: MIT

package builder

import "math/rand"

const defaultEdgeWeight = int64(1)

// DefaultEdgeWeight is the weight of every edge unless a weight option is set.
const DefaultEdgeWeight = defaultEdgeWeight

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// weightNeedsRand marks weight functions that draw from rng.
	weightNeedsRand bool
}

// newBuilderConfig applies opts over the defaults (DefaultIDFn, constant
// weight 1, no RNG). Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(defaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
