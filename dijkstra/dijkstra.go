package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// SingleSource computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//
// Unreachable vertices keep Dist == Infinity and Prev == ""; this function
// does not treat them as an error; ComputeAllPairs does.
//
// Errors: ErrNilGraph, ErrEmptySource, ErrVertexNotFound, ErrDistanceOverflow.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Never panics; g is only read.
func SingleSource(g *core.Graph, source string) (*Result, error) {
	// 1) validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 2) allocate per-run state sized to V
	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 3) seed the heap and drain it
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // read-only within a run
	source  string            // start vertex
	dist    map[string]int64  // vertex → best distance so far
	prev    map[string]string // vertex → predecessor on the shortest path
	visited map[string]bool   // finalized vertices
	pq      nodePQ            // lazy min-heap
}

// init sets dist[v]=Infinity, prev[v]="" for all v and pushes the source.
// Complexity: O(V).
func (r *runner) init(vertices []string) {
	// 1) every vertex starts unreachable
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.prev[v] = ""
		r.visited[v] = false
	}

	// 2) the source is the only entry in the heap
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process pops the closest unfinished vertex until the heap drains.
//
// Steps per pop:
//  1. Skip stale entries (vertex already finalized).
//  2. Finalize the vertex.
//  3. Relax its outgoing pairs.
//
// Complexity: O((V + E) log V) over the whole run.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // 1) stale entry
		}
		r.visited[item.id] = true // 2)
		if err := r.relax(item.id); err != nil { // 3)
			return err
		}
	}

	return nil
}

// relax improves distances to the distinct neighbors of u.
// Parallel edges are seen once: NeighborIDs is deduplicated and the pair
// weight is shared by all copies.
//
// Steps per neighbor v:
//  1. Skip finalized vertices.
//  2. Read the pair weight.
//  3. Reject dist[u] + w ≥ Infinity (ErrDistanceOverflow).
//  4. Accept only strict improvements, so the first predecessor found on
//     ties is kept.
//
// Complexity: O(d·log V) for d distinct neighbors.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, v := range neighbors {
		// 1) finalized
		if r.visited[v] {
			continue
		}

		// 2) pair weight
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %s—%s: %w", u, v, err)
		}

		// 3) checked addition; Infinity itself is reserved for "unreachable"
		if w >= Infinity-du {
			return fmt.Errorf("%w: %d + %d (%s—%s)", ErrDistanceOverflow, du, w, u, v)
		}
		newDist := du + w

		// 4) strict "<"
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
