// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors and constructor.
// Concurrency:
//   - One sync.RWMutex guards every map; readers may run in parallel
//     (dijkstra.ComputeAllPairs relies on this).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex label is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that no edge was ever registered between two vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates AddEdge was called with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightOverflow indicates the running total weight would exceed
	// math.MaxInt64.
	ErrWeightOverflow = errors.New("core: total weight overflows int64")
)

// Edge describes one unordered vertex pair together with the number of
// parallel edges between the two endpoints and their shared weight.
//
// For a self-loop (U == V) Count is the number of loop insertions, not the
// degree contribution (which is 2·Count).
type Edge struct {
	U      string
	V      string
	Weight int64
	Count  int
}

// pairKey is the canonical (unordered) key of a vertex pair.
// The lexicographically smaller label always sits in a.
type pairKey struct {
	a, b string
}

func keyOf(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// Graph is an undirected, weighted multigraph.
//
// Parallel edges between the same pair are stored as a count and share a
// single weight. Vertices are enumerated in insertion order, which is what
// makes odd-vertex detection, matching tie-breaks and circuit start
// choice reproducible.
type Graph struct {
	mu sync.RWMutex

	order []string       // vertex labels in insertion order
	index map[string]int // label → position in order

	// multiplicity[u][v] = number of parallel edges u—v (mirrored for v—u).
	// A self-loop adds 2 to multiplicity[u][u] per insertion.
	multiplicity map[string]map[string]int

	weights map[pairKey]int64

	totalWeight int64 // Σ weight over every AddEdge call
	edgeCount   int   // number of AddEdge calls
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:        make(map[string]int),
		multiplicity: make(map[string]map[string]int),
		weights:      make(map[pairKey]int64),
	}
}
