// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor or weight
	// function was used without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a reference to a
	// vertex the graph does not hold.
	ErrConstructFailed = errors.New("builder: construction failed")
)
