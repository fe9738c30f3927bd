// Package graphio loads postman input graphs from files and exports solver
// results.
//
// # Input formats
//
// JSON, an edge list of [u, v, weight] triples:
//
//	{
//	  "vertices": ["Q"],
//	  "edges": [["A", "B", 1], ["B", "C", 2]]
//	}
//
// Labels may be strings or numbers (numbers are used in their decimal
// form); weights must be non-negative integers. "vertices" is optional and
// only needed for isolated vertices.
//
// TOML and YAML use named fields:
//
//	vertices = ["Q"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 1
//
// Malformed edges are rejected with ErrMalformedEdge before anything is
// added to the graph.
//
// # Output formats
//
//   - WriteJSON: cost, circuit, odd vertices and matching.
//   - ToDOT: undirected Graphviz source; edges duplicated by the solver
//     are drawn dashed.
//   - RenderSVG: DOT → SVG using [github.com/goccy/go-graphviz] in-process.
package graphio
