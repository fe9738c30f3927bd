// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over core.Graph and the
// component decomposition the postman solver reports when a graph is not
// connected.
//
// Neighbors are expanded in vertex insertion order, so Order, Depth and
// Parent are deterministic. Parallel edges and self-loops do not change
// the traversal: a neighbor is enqueued once.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
