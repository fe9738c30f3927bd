// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

type queueItem struct {
	id    string
	depth int
}

type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS traverses g from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation,
// or the OnVisit error wrapped with the vertex. On error the partial
// result is returned alongside.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}
	return nil
}
