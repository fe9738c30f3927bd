// Package dijkstra defines result types, configuration options and
// sentinel errors for shortest-path computation over a core.Graph.
//
// Options:
//
//	– WithParallelism(n): number of sources ComputeAllPairs runs concurrently.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrEmptySource       if the source ID is empty.
//	– ErrVertexNotFound    if the source vertex does not exist in the graph.
//	– ErrUnreachableVertex if a subset vertex cannot reach another one.
//	– ErrNoPath            if a predecessor walk dead-ends before the source.
//	– ErrDistanceOverflow  if a tentative distance would exceed Infinity.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrUnreachableVertex indicates that a vertex of the requested subset is
	// not reachable from another subset vertex (disconnected component).
	ErrUnreachableVertex = errors.New("dijkstra: vertex unreachable from source")

	// ErrNoPath indicates that path reconstruction hit a missing predecessor.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrDistanceOverflow indicates dist[u] + w does not fit below Infinity.
	// core.Graph bounds every simple path by its TotalWeight, so this only
	// fires on graphs assembled outside AddEdge's overflow guard.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")
)

// Infinity is the distance reported for unreachable vertices.
const Infinity = int64(math.MaxInt64)

// Result holds the outcome of one single-source run.
type Result struct {
	// Source is the start vertex.
	Source string

	// Dist maps every vertex to its shortest distance from Source,
	// or Infinity if unreachable.
	Dist map[string]int64

	// Prev maps every vertex to its predecessor on one shortest path.
	// Prev[Source] and Prev[v] for unreachable v are "".
	Prev map[string]string
}

// AllPairs holds shortest-path costs and predecessor tables between the
// vertices of a subset.
type AllPairs struct {
	// Sources is the subset, in the order it was given.
	Sources []string

	// Cost[u][v] is the shortest distance from u to v for u, v in Sources.
	Cost map[string]map[string]int64

	// Prev[u] is the full predecessor map of the run rooted at u.
	Prev map[string]map[string]string
}

// Options configures ComputeAllPairs.
type Options struct {
	// Parallelism is the number of single-source runs executed at once.
	// Values < 1 are treated as 1 (sequential).
	Parallelism int
}

// Option represents a functional option.
type Option func(*Options)

// WithParallelism sets how many sources run concurrently.
// Each run only reads the graph, so the result does not depend on n.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// DefaultOptions returns sequential execution.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}
