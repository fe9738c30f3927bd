package eulerian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// Sentinel errors for circuit extraction.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("eulerian: graph is nil")

	// ErrStartNotFound indicates the start vertex is not in the graph.
	ErrStartNotFound = errors.New("eulerian: start vertex not found")

	// ErrOddDegree indicates a vertex of odd degree; no circuit exists.
	ErrOddDegree = errors.New("eulerian: vertex has odd degree")

	// ErrDisconnected indicates edges unreachable from the start vertex.
	ErrDisconnected = errors.New("eulerian: edge set is not connected to start")
)

// Circuit returns a closed walk from start that uses every edge of g
// exactly once. len(result) == g.EdgeCount()+1 and result[0] == result[len-1].
// A graph without edges yields [start].
//
// Implementation:
//   - Stage 1: validate start and parity.
//   - Stage 2: build the scratch index.
//   - Stage 3: Hierholzer with an explicit stack: while the top vertex has an
//     unused edge, burn it (both directions) and push the neighbor; else pop
//     the top onto the output.
//   - Stage 4: reverse the output and check that every edge was consumed.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrOddDegree, ErrDisconnected.
func Circuit(g *core.Graph, start string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	for _, v := range g.Vertices() {
		if d := g.Degree(v); d%2 != 0 {
			return nil, fmt.Errorf("%w: %q (degree %d)", ErrOddDegree, v, d)
		}
	}

	s, err := newScratch(g)
	if err != nil {
		return nil, err
	}
	path := s.walk(s.id[start])

	if want := g.EdgeCount() + 1; len(path) != want {
		return nil, fmt.Errorf("%w: walked %d of %d edges", ErrDisconnected, len(path)-1, want-1)
	}

	out := make([]string, len(path))
	for i, id := range path {
		out[len(path)-1-i] = s.labels[id]
	}

	return out, nil
}

// scratch is the traversal-owned edge-multiplicity index.
type scratch struct {
	labels []string       // id → label
	id     map[string]int // label → id
	nbrs   [][]int        // nbrs[u]: distinct neighbor ids, ascending
	counts [][]int        // counts[u][k]: remaining multiplicity toward nbrs[u][k]
	pos    []map[int]int  // pos[u][v]: k such that nbrs[u][k] == v
	cursor []int          // cursor[u]: first k that may still have count > 0
}

func newScratch(g *core.Graph) (*scratch, error) {
	labels := g.Vertices()
	n := len(labels)
	s := &scratch{
		labels: labels,
		id:     make(map[string]int, n),
		nbrs:   make([][]int, n),
		counts: make([][]int, n),
		pos:    make([]map[int]int, n),
		cursor: make([]int, n),
	}
	for i, l := range labels {
		s.id[l] = i
	}
	for u, l := range labels {
		// NeighborIDs is in insertion order, which is id order here.
		nb, err := g.NeighborIDs(l)
		if err != nil {
			return nil, fmt.Errorf("eulerian: neighbors of %q: %w", l, err)
		}
		s.nbrs[u] = make([]int, len(nb))
		s.counts[u] = make([]int, len(nb))
		s.pos[u] = make(map[int]int, len(nb))
		for k, vl := range nb {
			m, err := g.Multiplicity(l, vl)
			if err != nil {
				return nil, fmt.Errorf("eulerian: multiplicity %s—%s: %w", l, vl, err)
			}
			v := s.id[vl]
			s.nbrs[u][k] = v
			s.counts[u][k] = m
			s.pos[u][v] = k
		}
	}

	return s, nil
}

// next returns the neighbor of u to traverse, or -1 when u is exhausted.
func (s *scratch) next(u int) int {
	for s.cursor[u] < len(s.nbrs[u]) && s.counts[u][s.cursor[u]] == 0 {
		s.cursor[u]++
	}
	if s.cursor[u] == len(s.nbrs[u]) {
		return -1
	}

	return s.nbrs[u][s.cursor[u]]
}

// burn removes one u—v edge in both directions. For a loop both decrements
// hit the same cell, removing the 2 degree units one loop carries.
func (s *scratch) burn(u, v int) {
	s.counts[u][s.pos[u][v]]--
	s.counts[v][s.pos[v][u]]--
}

// walk runs Hierholzer from start and returns the circuit in pop order
// (reverse traversal order).
func (s *scratch) walk(start int) []int {
	stack := []int{start}
	var path []int
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if v := s.next(u); v >= 0 {
			s.burn(u, v)
			stack = append(stack, v)
			continue
		}
		path = append(path, u)
		stack = stack[:len(stack)-1]
	}

	return path
}
