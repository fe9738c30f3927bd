package postman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/postman/core"
)

// VerifyCircuit checks that circuit is a closed walk over edges of g that
// covers every edge instance of g at least once, and returns its cost
// (Σ pair weight per step).
//
// A graph without edges accepts an empty circuit or a single vertex of g.
//
// Errors: ErrNilGraph, ErrInvalidCircuit (wrapped with the first violation),
// ErrCostOverflow if the walk cost does not fit in an int64.
// Complexity: O(len(circuit) + E).
func VerifyCircuit(g *core.Graph, circuit []string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(circuit) == 0 {
		if g.EdgeCount() == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: empty walk on a graph with %d edges", ErrInvalidCircuit, g.EdgeCount())
	}
	if circuit[0] != circuit[len(circuit)-1] {
		return 0, fmt.Errorf("%w: walk starts at %q but ends at %q", ErrInvalidCircuit, circuit[0], circuit[len(circuit)-1])
	}
	if !g.HasVertex(circuit[0]) {
		return 0, fmt.Errorf("%w: unknown vertex %q", ErrInvalidCircuit, circuit[0])
	}

	type pair struct{ a, b string }
	canon := func(u, v string) pair {
		if v < u {
			u, v = v, u
		}
		return pair{u, v}
	}

	used := make(map[pair]int)
	var cost int64
	for i := 0; i+1 < len(circuit); i++ {
		u, v := circuit[i], circuit[i+1]
		if !g.HasEdge(u, v) {
			return 0, fmt.Errorf("%w: step %d %s—%s is not an edge", ErrInvalidCircuit, i, u, v)
		}
		w, err := g.Weight(u, v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidCircuit, err)
		}
		if w > math.MaxInt64-cost {
			return 0, fmt.Errorf("%w: walk cost at step %d", ErrCostOverflow, i)
		}
		cost += w
		used[canon(u, v)]++
	}

	for _, e := range g.Edges() {
		if n := used[canon(e.U, e.V)]; n < e.Count {
			return 0, fmt.Errorf("%w: edge %s—%s used %d of %d times", ErrInvalidCircuit, e.U, e.V, n, e.Count)
		}
	}

	return cost, nil
}
