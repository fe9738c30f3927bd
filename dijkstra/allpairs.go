package dijkstra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/postman/core"
)

// ComputeAllPairs runs SingleSource once per vertex in subset and collects
// the subset-to-subset cost table plus each run's predecessor map.
//
// Errors:
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound, ErrDistanceOverflow
//     from SingleSource.
//   - ErrUnreachableVertex if some subset vertex is unreachable from another.
//   - ctx.Err() if the context is cancelled before every run started.
//
// Complexity: O(k·(V+E)·log V) for k = len(subset).
func ComputeAllPairs(ctx context.Context, g *core.Graph, subset []string, opts ...Option) (*AllPairs, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// Each goroutine writes only its own slot, so no locking is needed.
	results := make([]*Result, len(subset))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)
	for i, src := range subset {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := SingleSource(g, src)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ap := &AllPairs{
		Sources: append([]string(nil), subset...),
		Cost:    make(map[string]map[string]int64, len(subset)),
		Prev:    make(map[string]map[string]string, len(subset)),
	}
	for _, res := range results {
		row := make(map[string]int64, len(subset))
		for _, dst := range subset {
			d := res.Dist[dst]
			if d == Infinity {
				return nil, fmt.Errorf("%w: %q from %q", ErrUnreachableVertex, dst, res.Source)
			}
			row[dst] = d
		}
		ap.Cost[res.Source] = row
		ap.Prev[res.Source] = res.Prev
	}

	return ap, nil
}

// Path reconstructs the shortest path u → v from the run rooted at u.
//
// Errors: ErrVertexNotFound if u was not one of the sources; ErrNoPath as
// in ReconstructPath.
func (ap *AllPairs) Path(u, v string) ([]string, error) {
	prev, ok := ap.Prev[u]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a source", ErrVertexNotFound, u)
	}

	return ReconstructPath(prev, u, v)
}
