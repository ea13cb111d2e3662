// Package dfs implements depth-first search (single-source and forest),
// topological sort and cycle detection over any pgm.Graph. Edges are followed
// from their out-vertex to their in-vertex.
package dfs

import (
	"fmt"

	"github.com/seyyedshah/blueprints/pgm"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts DFSOptions // traversal options
	res  *DFSResult // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (startID is ignored); otherwise, it
// starts only from startID. Returns DFSResult or error if aborted by context or hook.
func DFS(g pgm.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	res := &DFSResult{
		Depth:   make(map[string]int),
		Parent:  make(map[string]string),
		Visited: make(map[string]bool),
	}
	walker := &dfsWalker{opts: dopts, res: res}

	if dopts.FullTraversal {
		if !g.Features().SupportsVertexIteration {
			return nil, ErrNoVertexIteration
		}
		for v := range g.Vertices() {
			if !res.Visited[v.ID()] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		start, err := g.Vertex(startID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrStartVertexNotFound, startID, err)
		}
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits v at the given depth, recursing into its out-neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(v pgm.Vertex, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	id := v.ID()
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for e := range v.OutEdges(w.opts.Labels...) {
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.opts.SkippedEdges++
			continue
		}
		nbr := e.InVertex()
		nid := nbr.ID()
		if w.res.Visited[nid] {
			continue
		}
		// Beyond the depth limit the neighbor is not discovered at all.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
