// Package dijkstra implements the shortest-path stage of the postman
// solver: single-source Dijkstra, all-pairs costs restricted to a vertex
// subset, and predecessor-based path reconstruction.
//
// Overview:
//
//   - SingleSource runs Dijkstra with a min-heap and lazy decrease-key.
//     Parallel edges collapse into one neighbor whose weight is the pair
//     weight stored in core.Graph; multiplicity is irrelevant here.
//   - ComputeAllPairs runs SingleSource once per subset vertex (not over the
//     whole graph): O(k·(V+E)·log V) for k sources. Runs are independent and
//     read-only, so WithParallelism fans them out with errgroup.
//   - ReconstructPath walks predecessors from the target back to the source.
//
// Weights are validated as non-negative by core.Graph.AddEdge, so no
// negative-weight pre-scan is needed here.
//
// API reference:
//
//	func SingleSource(g *core.Graph, source string) (*Result, error)
//	func ComputeAllPairs(ctx context.Context, g *core.Graph, subset []string, opts ...Option) (*AllPairs, error)
//	func ReconstructPath(prev map[string]string, u, v string) ([]string, error)
//	func (ap *AllPairs) Path(u, v string) ([]string, error)
//
// Thread safety:
//
//   - core.Graph guards reads with a shared lock; concurrent runs are safe as
//     long as nobody mutates the graph meanwhile.
package dijkstra
