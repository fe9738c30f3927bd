package postman

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/postman/bfs"
	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
	"github.com/katalvlaran/postman/eulerian"
	"github.com/katalvlaran/postman/matching"
)

// Solve computes a minimum-weight closed walk covering every edge of g.
//
// Pipeline:
//  1. Connectivity check (ErrDisconnected).
//  2. Odd-degree vertices.
//  3. None: circuit on g directly, cost = g.TotalWeight().
//  4. Shortest paths between odd vertices only.
//  5. Minimum-weight perfect matching over them.
//  6. Augmented graph: original edges + one copy of every edge on each
//     matched pair's shortest path.
//  7. Parity check, then Eulerian circuit from the first odd vertex.
//  8. Cost = g.TotalWeight() + matching cost, rejected with ErrCostOverflow
//     when it does not fit in an int64 (checked before augmenting).
//
// g is only read. ctx is checked between stages; no partial result is
// returned on failure.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	logger := cfg.Logger

	if !g.IsConnected() {
		comps, err := bfs.Components(g)
		if err != nil {
			return nil, err
		}
		sizes := make([]int, len(comps))
		for i, c := range comps {
			sizes[i] = len(c)
		}
		logger.Debug("graph is disconnected", "components", len(comps), "sizes", sizes)
		return nil, fmt.Errorf("%w: %d components with edges", ErrDisconnected, len(comps))
	}

	odd := g.OddDegreeVertices()
	if len(odd) == 0 {
		if g.VertexCount() == 0 {
			return &Result{Circuit: []string{}, Pairing: matching.Pairing{}, Augmented: g}, nil
		}
		logger.Debug("graph is already Eulerian", "vertices", g.VertexCount(), "edges", g.EdgeCount())
		circuit, err := eulerian.Circuit(g, startVertex(g))
		if err != nil {
			return nil, err
		}

		return &Result{
			Circuit:   circuit,
			Cost:      g.TotalWeight(),
			Pairing:   matching.Pairing{},
			Augmented: g,
		}, nil
	}

	logger.Debug("found odd-degree vertices", "count", len(odd), "vertices", odd)
	if cfg.MaxOddVertices > 0 && len(odd) > cfg.MaxOddVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyOddVertices, len(odd), cfg.MaxOddVertices)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := dijkstra.ComputeAllPairs(ctx, g, odd, dijkstra.WithParallelism(cfg.Parallelism))
	if err != nil {
		return nil, fmt.Errorf("postman: shortest paths: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	pairing, matchingCost, err := matching.Solve(cfg.Strategy, odd, paths.Cost)
	if err != nil {
		return nil, fmt.Errorf("postman: matching: %w", err)
	}
	logger.Debug("minimum matching", "strategy", cfg.Strategy, "pairs", pairing.String(), "cost", matchingCost)
	if matchingCost > math.MaxInt64-g.TotalWeight() {
		return nil, fmt.Errorf("%w: %d + %d", ErrCostOverflow, g.TotalWeight(), matchingCost)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	augmented, err := Augment(g, pairing, paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("augmented graph", "edges", augmented.EdgeCount(), "added", augmented.EdgeCount()-g.EdgeCount())

	if left := augmented.OddDegreeVertices(); len(left) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrAugmentedOddDegree, left)
	}

	circuit, err := eulerian.Circuit(augmented, odd[0])
	if err != nil {
		return nil, err
	}

	return &Result{
		Circuit:      circuit,
		Cost:         g.TotalWeight() + matchingCost,
		OddVertices:  odd,
		Pairing:      pairing,
		MatchingCost: matchingCost,
		Augmented:    augmented,
	}, nil
}

// Augment builds a fresh graph holding every edge instance of g plus, for
// each pair in pairing, one extra instance of every edge on the pair's
// shortest path. Weights are read from g.
//
// g is not modified. Loops keep their insertion count.
func Augment(g *core.Graph, pairing matching.Pairing, paths *dijkstra.AllPairs) (*core.Graph, error) {
	aug := core.NewGraph()
	for _, v := range g.Vertices() {
		if err := aug.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		for i := 0; i < e.Count; i++ {
			if err := aug.AddEdge(e.U, e.V, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	for _, pr := range pairing {
		path, err := paths.Path(pr.U, pr.V)
		if err != nil {
			return nil, fmt.Errorf("postman: path %s→%s: %w", pr.U, pr.V, err)
		}
		for i := 0; i+1 < len(path); i++ {
			w, err := g.Weight(path[i], path[i+1])
			if err != nil {
				return nil, fmt.Errorf("postman: path %s→%s: %w", pr.U, pr.V, err)
			}
			if err = aug.AddEdge(path[i], path[i+1], w); err != nil {
				return nil, err
			}
		}
	}

	return aug, nil
}

// startVertex picks the first positive-degree vertex, falling back to the
// first vertex. g must not be empty.
func startVertex(g *core.Graph) string {
	vs := g.Vertices()
	for _, v := range vs {
		if g.Degree(v) > 0 {
			return v
		}
	}

	return vs[0]
}
