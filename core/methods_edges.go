// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and pair queries (multiplicity, weight, catalog).
// Determinism:
//   - Edges() is ordered by the insertion index of the lower endpoint, then
//     of the higher endpoint.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts one undirected edge u—v with the given weight.
//
// Steps:
//  1. Validate labels and weight.
//  2. Reject the insertion if totalWeight + weight overflows int64; the
//     graph is left unchanged.
//  3. Register both endpoints.
//  4. Increment multiplicity(u,v) and multiplicity(v,u); for u == v this
//     adds 2 to the diagonal, matching the loop-counts-twice degree rule.
//  5. Store the weight for the unordered pair. A different weight for an
//     existing pair replaces the stored one for every parallel copy.
//  6. Add weight to the running total.
//
// Errors: ErrEmptyVertexID, ErrNegativeWeight, ErrWeightOverflow.
// Complexity: O(1) amortized. Never panics.
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) overflow guard before any mutation
	if weight > math.MaxInt64-g.totalWeight {
		return fmt.Errorf("%w: %d + %d (%s—%s)", ErrWeightOverflow, g.totalWeight, weight, u, v)
	}

	// 2) endpoints, symmetric counts, shared pair weight
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.multiplicity[u][v]++
	g.multiplicity[v][u]++
	g.weights[keyOf(u, v)] = weight

	// 3) running totals
	g.totalWeight += weight
	g.edgeCount++

	return nil
}

// Multiplicity returns the number of entries stored for u→v.
// For u != v this is the count of parallel edges; for a loop it is twice the
// number of loop insertions.
//
// Errors: ErrVertexNotFound if either endpoint is unknown.
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.multiplicity[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if _, ok = g.index[v]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return row[v], nil
}

// Weight returns the weight shared by every parallel edge u—v.
//
// Errors: ErrEdgeNotFound if no edge between u and v was ever added.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[keyOf(u, v)]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, u, v)
	}

	return w, nil
}

// HasEdge reports whether at least one edge u—v exists.
// Unknown endpoints yield false. Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.multiplicity[u][v] > 0
}

// EdgeCount returns the number of edge instances (parallel copies counted
// individually, a loop counted once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of weights over every AddEdge call.
//
// Because a pair's weight can be overwritten, this may differ from
// Σ Count·Weight over Edges() when the same pair was added with different
// weights; the running sum is what the postman cost is defined against.
// It never exceeds math.MaxInt64 (see ErrWeightOverflow).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight
}

// Edges returns one Edge per connected unordered pair.
// Complexity: O(V + E + P·log P) where P is the number of distinct pairs.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, u := range g.order {
		iu := g.index[u]
		for _, v := range g.sortedNeighborsLocked(g.multiplicity[u]) {
			if g.index[v] < iu {
				continue // reported from the lower endpoint
			}
			count := g.multiplicity[u][v]
			if u == v {
				count /= 2
			}
			out = append(out, Edge{U: u, V: v, Weight: g.weights[keyOf(u, v)], Count: count})
		}
	}

	return out
}
