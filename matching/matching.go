package matching

import (
	"errors"
	"fmt"
	"math"
)

// MinWeightPerfectMatching returns the pairing of nodes with the smallest
// total cost, and that cost, by evaluating every pairing.
//
// Ties are broken by enumeration order: the first minimal pairing wins.
// Pairings whose total reaches math.MaxInt64 are skipped; if every pairing
// does, ErrCostOverflow is returned. An empty node list yields an empty
// pairing of cost 0.
//
// Errors: ErrOddMatchingSize, ErrMissingCost, ErrCostOverflow.
// Complexity: O((n−1)!!·n).
func MinWeightPerfectMatching(nodes []string, cost CostTable) (Pairing, int64, error) {
	var (
		best     Pairing
		bestCost int64 = math.MaxInt64
		costErr  error
	)
	err := EachPairing(nodes, func(p Pairing) bool {
		c, err := cost.Cost(p)
		if errors.Is(err, ErrCostOverflow) {
			return true
		}
		if err != nil {
			costErr = err
			return false
		}
		if c < bestCost {
			bestCost = c
			best = append(best[:0], p...)
		}
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	if costErr != nil {
		return nil, 0, costErr
	}
	if best == nil {
		if len(nodes) > 0 {
			return nil, 0, fmt.Errorf("%w: every pairing of %d nodes", ErrCostOverflow, len(nodes))
		}
		best = Pairing{}
	}

	return best, bestCost, nil
}

// MinWeightPerfectMatchingDP solves the same problem with a subset DP:
// best[mask] is the cheapest way to pair the nodes whose bit is set in mask,
// always pairing the lowest set bit first.
//
// Partners are tried in ascending index with a strict improvement test,
// and the winning partner sequence is the lexicographically smallest among
// optimal ones, which is exactly the first optimum of the exhaustive
// enumeration.
//
// Candidates whose sum would reach math.MaxInt64 are treated as infeasible,
// as in the exhaustive search.
//
// Errors: ErrOddMatchingSize, ErrTooManyNodes, ErrMissingCost, ErrCostOverflow.
// Complexity: O(2ⁿ·n) time, O(2ⁿ) space.
func MinWeightPerfectMatchingDP(nodes []string, cost CostTable) (Pairing, int64, error) {
	n := len(nodes)
	if n%2 != 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrOddMatchingSize, n)
	}
	if n > MaxDPNodes {
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, n, MaxDPNodes)
	}

	// dense pairwise costs, validated up front
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := i + 1; j < n; j++ {
			c, err := cost.lookup(nodes[i], nodes[j])
			if err != nil {
				return nil, 0, err
			}
			w[i][j] = c
		}
	}

	// best[mask] solves the sub-problem on the nodes NOT in mask (mask holds
	// the already paired ones); choice[mask] is the partner of the lowest
	// unpaired node. Filling from the full mask downwards keeps the
	// lexicographic tie-break simple.
	full := 1<<uint(n) - 1
	const unset = int64(math.MaxInt64)
	best := make([]int64, full+1)
	choice := make([]int8, full+1)
	for mask := range best {
		best[mask] = unset
	}
	best[full] = 0
	for mask := full - 1; mask >= 0; mask-- {
		i := lowestUnset(mask, n)
		if i < 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				continue
			}
			next := mask | 1<<uint(i) | 1<<uint(j)
			// unset doubles as the overflow bound
			if best[next] == unset || w[i][j] >= unset-best[next] {
				continue
			}
			if c := w[i][j] + best[next]; c < best[mask] {
				best[mask] = c
				choice[mask] = int8(j)
			}
		}
	}

	if best[0] == unset {
		return nil, 0, fmt.Errorf("%w: every pairing of %d nodes", ErrCostOverflow, n)
	}

	pairing := make(Pairing, 0, n/2)
	for mask := 0; mask != full; {
		i := lowestUnset(mask, n)
		j := int(choice[mask])
		pairing = append(pairing, Pair{U: nodes[i], V: nodes[j]})
		mask |= 1<<uint(i) | 1<<uint(j)
	}

	return pairing, best[0], nil
}

// lowestUnset returns the smallest i < n whose bit is clear in mask, or -1.
func lowestUnset(mask, n int) int {
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) == 0 {
			return i
		}
	}

	return -1
}

// Solve dispatches to the matcher selected by s.
func Solve(s Strategy, nodes []string, cost CostTable) (Pairing, int64, error) {
	switch s {
	case Exhaustive:
		return MinWeightPerfectMatching(nodes, cost)
	case Bitmask:
		return MinWeightPerfectMatchingDP(nodes, cost)
	default:
		return nil, 0, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}
