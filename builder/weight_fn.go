// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// WeightFn produces the next edge weight. rng may be nil only for
// functions that do not draw from it.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns w and ignores rng.
// Complexity: O(1). Never panics.
func ConstantWeightFn(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// UniformWeightFn draws uniformly from [min,max]. Callers validate the
// range (WithUniformWeight does); rng must be non-nil.
// Complexity: O(1) per draw.
func UniformWeightFn(min, max int64) WeightFn {
	span := max - min + 1
	return func(rng *rand.Rand) int64 {
		return min + rng.Int63n(span)
	}
}
