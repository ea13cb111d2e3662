// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/seyyedshah/blueprints/pgm"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	ctx    context.Context // allows cancellation; defaults to Background
	labels []string        // edge labels that impose ordering; empty means all
}

// defaultTopoOptions returns the default options (Background context, all labels).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOrderingLabels returns a TopoOption restricting the ordering constraints
// to edges carrying one of labels.
func WithOrderingLabels(labels ...string) TopoOption {
	return func(o *topoOptions) {
		o.labels = append([]string(nil), labels...)
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	opts  topoOptions    // traversal options
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Vertices are started in backend enumeration order, so the in-memory
// backend yields a deterministic ordering.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNoVertexIteration: g cannot enumerate its vertices.
//   - ErrCycleDetected: a cycle was found (wrapped with the closing vertex).
//   - ctx.Err() when cancelled via WithCancelContext.
func TopologicalSort(g pgm.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Features().SupportsVertexIteration {
		return nil, ErrNoVertexIteration
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	sorter := &topoSorter{
		opts:  opts,
		state: make(map[string]int),
	}
	for v := range g.Vertices() {
		if sorter.state[v.ID()] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (t *topoSorter) visit(v pgm.Vertex) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	id := v.ID()
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	for e := range v.OutEdges(t.opts.labels...) {
		if err := t.visit(e.InVertex()); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
