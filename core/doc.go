// Package core provides the undirected, weighted multigraph used by the
// postman solver.
//
// The Graph G = (V, E) stores:
//
//   - vertices in insertion order (all enumerations are deterministic);
//   - multiplicity[u][v]: the number of parallel edges u—v, kept symmetric;
//   - one weight per unordered pair, shared by all parallel copies;
//   - the running total weight over every AddEdge call.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddVertex(id string) error                  // O(1), idempotent
//	AddEdge(u, v string, weight int64) error    // O(1)
//
//	// Query
//	Degree(v string) int                        // Σ multiplicities, loops count twice
//	OddDegreeVertices() []string                // insertion order
//	IsConnected() bool                          // over positive-degree vertices
//	NeighborIDs(v string) ([]string, error)     // distinct, insertion order
//	Multiplicity(u, v string) (int, error)
//	Weight(u, v string) (int64, error)
//	Edges() []Edge                              // one entry per pair, with Count
//	Vertices() []string
//	EdgeCount() int
//	TotalWeight() int64
//
//	// Copy
//	Clone() *Graph
//
// Weight quirk:
//
//	Re-adding an existing pair with a different weight overwrites the pair
//	weight for every parallel copy, while TotalWeight keeps the sum of the
//	weights passed at insertion time.
//
// Lookups never create entries: Weight on an unknown pair returns
// ErrEdgeNotFound and Multiplicity on an unknown vertex returns
// ErrVertexNotFound.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex label
//	ErrNegativeWeight – AddEdge with weight < 0
//	ErrWeightOverflow – AddEdge would push TotalWeight past math.MaxInt64
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing pair
//
// All methods are safe for concurrent use; reads take a shared lock.
package core
