// Package postman solves the Chinese Postman (route inspection) problem on
// weighted, undirected multigraphs: find the cheapest closed walk that
// traverses every edge at least once.
//
// Solve composes the other packages into one linear pipeline:
//
//	core.Graph.IsConnected        → ErrDisconnected (bfs.Components sizes the parts)
//	core.Graph.OddDegreeVertices  → odd
//	dijkstra.ComputeAllPairs      → cost table between odd vertices
//	matching.Solve                → cheapest pairing of odd vertices
//	Augment                       → original edges + duplicated path edges
//	eulerian.Circuit              → the walk
//
// Each matched pair contributes one extra unit of degree to both endpoints
// and two to every inner path vertex, so the augmented graph has even
// degree everywhere; Solve checks this before extracting the circuit.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("C", "A", 1)
//	res, err := postman.Solve(ctx, g)
//	// res.Circuit == [A B C A], res.Cost == 3
//
// The matching stage is exponential in the number of odd vertices; use
// WithMaxOddVertices to bound it and WithStrategy(matching.Bitmask) for
// larger odd sets.
package postman
