// Package matching defines pairing types, strategies and sentinel errors
// for exact minimum-weight perfect matching over a small vertex set.
package matching

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for matching.
var (
	// ErrOddMatchingSize indicates a perfect matching was requested on an
	// odd number of nodes. For odd-degree vertex sets this is a bug upstream.
	ErrOddMatchingSize = errors.New("matching: odd number of nodes")

	// ErrMissingCost indicates the cost table has no entry for a pair.
	ErrMissingCost = errors.New("matching: missing cost table entry")

	// ErrTooManyNodes indicates the bitmask strategy was asked for more
	// than MaxDPNodes nodes.
	ErrTooManyNodes = errors.New("matching: too many nodes for bitmask strategy")

	// ErrCostOverflow indicates a pairing total does not fit below
	// math.MaxInt64.
	ErrCostOverflow = errors.New("matching: pairing cost overflows int64")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("matching: unknown strategy")
)

// MaxDPNodes bounds the bitmask strategy: its table holds 2ⁿ entries.
const MaxDPNodes = 20

// Pair is one unordered matched pair. U is the node that came first in the
// enumeration order.
type Pair struct {
	U, V string
}

// Pairing is a list of disjoint pairs covering a node set.
type Pairing []Pair

// String renders the pairing as "(A,C) (B,D)".
func (p Pairing) String() string {
	parts := make([]string, len(p))
	for i, pr := range p {
		parts[i] = "(" + pr.U + "," + pr.V + ")"
	}

	return strings.Join(parts, " ")
}

// CostTable holds symmetric pairwise costs: cost[u][v].
// dijkstra.AllPairs.Cost has exactly this shape.
type CostTable map[string]map[string]int64

// lookup returns cost[u][v] or ErrMissingCost.
func (c CostTable) lookup(u, v string) (int64, error) {
	w, ok := c[u][v]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrMissingCost, u, v)
	}

	return w, nil
}

// Cost sums the table entries over a pairing.
//
// Errors: ErrMissingCost, ErrCostOverflow if the sum reaches math.MaxInt64.
// Complexity: O(len(p)).
func (c CostTable) Cost(p Pairing) (int64, error) {
	var total int64
	for _, pr := range p {
		w, err := c.lookup(pr.U, pr.V)
		if err != nil {
			return 0, err
		}
		if w >= math.MaxInt64-total {
			return 0, fmt.Errorf("%w: %d + %d at %s—%s", ErrCostOverflow, total, w, pr.U, pr.V)
		}
		total += w
	}

	return total, nil
}

// Strategy selects the matching algorithm.
type Strategy int

const (
	// Exhaustive enumerates all (n−1)!! pairings. This is the reference
	// behavior; ties go to the first minimal pairing enumerated.
	Exhaustive Strategy = iota

	// Bitmask runs an O(2ⁿ·n) subset DP. It returns the same pairing as
	// Exhaustive, including on ties.
	Bitmask
)

// String returns the config/CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case Bitmask:
		return "bitmask"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "exhaustive" / "bitmask" (case-insensitive) to a Strategy.
// The empty string selects Exhaustive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exhaustive":
		return Exhaustive, nil
	case "bitmask", "dp":
		return Bitmask, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
