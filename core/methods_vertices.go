// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices(), OddDegreeVertices() and NeighborIDs() follow vertex
//     insertion order, never map order.

package core

import "sort"

// AddVertex registers a vertex without edges (idempotent).
//
// Isolated vertices have degree 0; they are ignored by IsConnected and never
// appear in OddDegreeVertices.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id when missing. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.multiplicity[id] = make(map[string]int)
}

// HasVertex reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertices returns a copy of all vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns Σ_u multiplicity(v,u). Unknown vertices have degree 0.
// A self-loop counts twice.
//
// Complexity: O(deg(v)) distinct neighbors.
func (g *Graph) Degree(v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degreeLocked(v)
}

// degreeLocked sums v's row. Caller holds g.mu.
func (g *Graph) degreeLocked(v string) int {
	var d int
	for _, c := range g.multiplicity[v] {
		d += c
	}

	return d
}

// OddDegreeVertices returns every vertex whose degree is odd, in insertion order.
//
// By the handshake lemma the result always has even length.
// Complexity: O(V + E).
func (g *Graph) OddDegreeVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var odd []string
	for _, v := range g.order {
		if g.degreeLocked(v)%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}

// NeighborIDs returns the distinct neighbors of v (positive multiplicity)
// sorted by their insertion index. A vertex with a self-loop lists itself.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d·log d). Never panics.
func (g *Graph) NeighborIDs(v string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.multiplicity[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.sortedNeighborsLocked(row), nil
}

// sortedNeighborsLocked keeps positive entries of row, ordered by insertion
// index. Caller holds g.mu.
func (g *Graph) sortedNeighborsLocked(row map[string]int) []string {
	out := make([]string, 0, len(row))
	for u, c := range row {
		if c > 0 {
			out = append(out, u)
		}
	}
	sortByIndex(out, g.index)

	return out
}

// sortByIndex orders labels by their insertion position.
func sortByIndex(ids []string, index map[string]int) {
	sort.Slice(ids, func(i, j int) bool { return index[ids[i]] < index[ids[j]] })
}
