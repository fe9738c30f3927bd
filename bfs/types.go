// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result holds one traversal.
type Result struct {
	Order  []string          // visit order
	Depth  map[string]int    // hops from the start
	Parent map[string]string // BFS-tree parent; the start has none
}

// PathTo returns the BFS-tree path start→…→id, or nil if id was not reached.
func (r *Result) PathTo(id string) []string {
	if _, ok := r.Depth[id]; !ok {
		return nil
	}
	path := []string{id}
	for cur := id; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Options configures BFS.
type Options struct {
	Ctx      context.Context
	MaxDepth int // 0 means unlimited
	OnVisit  func(id string, depth int) error
}

// Option is a functional option for BFS.
type Option func(*Options)

// DefaultOptions returns an unbounded traversal with no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext cancels the traversal when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops expanding past depth d (d ≤ 0 means unlimited).
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithOnVisit calls fn for each visited vertex; a non-nil error aborts.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
