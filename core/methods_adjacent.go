// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Reachability over positive-multiplicity edges.

package core

// IsConnected reports whether every vertex of positive degree is reachable
// from every other one.
//
// Zero-degree vertices are excluded from the check, so a graph made of one
// edge component plus isolated vertices is connected. A graph without any
// edge (including the empty graph) is connected by convention.
//
// Implementation:
//   - Stage 1: pick the first positive-degree vertex in insertion order.
//   - Stage 2: iterative DFS over neighbors with positive multiplicity.
//   - Stage 3: compare the visited count with the number of positive-degree vertices.
//
// Complexity: O(V + E). Never panics.
func (g *Graph) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) start vertex and active count
	var (
		start  string
		active int
	)
	for _, v := range g.order {
		if g.degreeLocked(v) > 0 {
			if active == 0 {
				start = v
			}
			active++
		}
	}
	if active == 0 {
		return true
	}

	// 2) DFS with an explicit stack
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range g.multiplicity[u] {
			if c > 0 && !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	// 3) every active vertex reached; isolated ones were never pushed
	return len(visited) == active
}
