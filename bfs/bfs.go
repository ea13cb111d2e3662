// Package bfs provides breadth-first search over a pgm.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, label and edge filtering.
package bfs

import (
	"context"
	"fmt"
	"iter"

	"github.com/seyyedshah/blueprints/pgm"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     pgm.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g pgm.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Vertex(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrStartVertexNotFound, startID, err)
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
			Via:    make(map[string]string),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, calls OnEnqueue, records the
// discovering edge, and adds v to the queue.
func (w *walker) enqueue(v pgm.Vertex, d int, via pgm.Edge) {
	id := v.ID()
	w.visited[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Via[id] = via.ID()
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v.ID(), item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v.ID())
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.ID(), err)
	}

	return nil
}

// enqueueNeighbors walks the incident edges selected by Direction and Labels,
// applies FilterEdge and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for e, nbr := range w.incident(item.v) {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if !w.opts.FilterEdge(item.v, e) {
			continue
		}
		// first time seen?
		if id := nbr.ID(); !w.visited[id] {
			w.res.Parent[id] = item.v.ID()
			w.enqueue(nbr, nextDepth, e)
		}
	}

	return nil
}

// incident yields (edge, neighbor) pairs of v in the configured direction.
// With Both, out-edges come first, then in-edges.
func (w *walker) incident(v pgm.Vertex) iter.Seq2[pgm.Edge, pgm.Vertex] {
	return func(yield func(pgm.Edge, pgm.Vertex) bool) {
		if w.opts.Direction != In {
			for e := range v.OutEdges(w.opts.Labels...) {
				if !yield(e, e.InVertex()) {
					return
				}
			}
		}
		if w.opts.Direction != Out {
			for e := range v.InEdges(w.opts.Labels...) {
				if !yield(e, e.OutVertex()) {
					return
				}
			}
		}
	}
}
