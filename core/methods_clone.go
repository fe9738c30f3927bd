// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph.

package core

// Clone returns an independent deep copy: vertex order, multiplicities,
// pair weights, total weight and edge count.
//
// The clone has its own mutex; mutating either graph never affects the other.
// Complexity: O(V + P) for P distinct pairs. Never panics.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) vertex order and index
	clone := NewGraph()
	clone.order = append([]string(nil), g.order...)
	for id, i := range g.index {
		clone.index[id] = i
	}
	// 2) multiplicity rows, copied per vertex
	for u, row := range g.multiplicity {
		cp := make(map[string]int, len(row))
		for v, c := range row {
			cp[v] = c
		}
		clone.multiplicity[u] = cp
	}
	// 3) pair weights and running totals
	for k, w := range g.weights {
		clone.weights[k] = w
	}
	clone.totalWeight = g.totalWeight
	clone.edgeCount = g.edgeCount

	return clone
}
