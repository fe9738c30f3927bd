// Package eulerian extracts an Eulerian circuit from a connected multigraph
// whose vertices all have even degree, using Hierholzer's algorithm.
//
// The caller's core.Graph is never modified: Circuit snapshots the
// multiplicities into a compact scratch index (integer vertex ids, sorted
// neighbor slices, remaining counts, one cursor per vertex) that the
// traversal "burns" and then drops.
//
// Determinism:
//
//	From the vertex on top of the stack the next edge always goes to the
//	neighbor with the lowest insertion index that still has remaining
//	multiplicity, so the same graph always yields the same circuit.
//
// Preconditions are checked instead of assumed: a missing start vertex, an
// odd-degree vertex, or an edge set the walk cannot exhaust (disconnected)
// are reported as errors.
//
// Complexity: O(V + E) after an O(E·log d) snapshot.
package eulerian
