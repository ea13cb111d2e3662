// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() yields edges sorted by ID ascending.
//   - Generated IDs are "e1", "e2", … from an atomic counter; taken IDs are skipped.
//
// Concurrency:
//   - Edge catalog and adjacency protected by muElem.
package core

import (
	"fmt"
	"iter"
	"sort"

	"github.com/seyyedshah/blueprints/pgm"
)

// AddEdge creates an edge out→in labeled label and returns it.
//
// Implementation:
//   - Stage 1: Under muElem write lock, resolve both endpoints to live vertices of g.
//   - Stage 2: Enforce loop policy (pgm.ErrUnsupportedTopology).
//   - Stage 3: Without multi-edges, return an existing (out, in, label) edge unchanged.
//   - Stage 4: Resolve the id (generate or reject duplicates), link adjacency, run the hook.
//
// Behavior highlights:
//   - The duplicate check precedes the id check, so a repeated call with a new id
//     still returns the existing edge when multi-edges are disabled.
//   - Loop and multi-edge policies are independent predicates.
//
// Errors:
//   - pgm.ErrElementNotFound: out or in is nil, removed, or foreign to g.
//   - pgm.ErrUnsupportedTopology: out == in and loops are disabled.
//   - pgm.ErrDuplicateID: a respected id is already taken.
//
// Complexity:
//   - Time O(1) with multi-edges, O(deg_label(out)) without; Space O(1).
func (g *Graph) AddEdge(id string, out, in pgm.Vertex, label string) (pgm.Edge, error) {
	g.muElem.Lock()
	defer g.muElem.Unlock()

	// 1) Endpoints must live in this graph
	ov, err := g.ownVertex(out)
	if err != nil {
		return nil, err
	}
	iv, err := g.ownVertex(in)
	if err != nil {
		return nil, err
	}
	// 2) Loop constraint
	if ov == iv && !g.allowLoops {
		return nil, fmt.Errorf("%w: self-loop on vertex %q", pgm.ErrUnsupportedTopology, ov.id)
	}
	// 3) Multi-edge constraint: idempotent on (out, in, label)
	if !g.allowMulti {
		for _, e := range ov.out[label] {
			if e.in == iv {
				return e, nil
			}
		}
	}
	// 4) Resolve the edge id
	if id == "" || g.ignoreIDs {
		id = nextID(&g.nextEdgeID, edgeIDPrefix, func(s string) bool { _, ok := g.edges[s]; return ok })
	} else if _, exists := g.edges[id]; exists {
		return nil, fmt.Errorf("%w: edge %q", pgm.ErrDuplicateID, id)
	}

	e := &Edge{
		element: element{g: g, id: id, props: make(map[string]any)},
		label:   label,
		out:     ov,
		in:      iv,
	}
	g.edges[id] = e
	link(ov.out, label, e)
	link(iv.in, label, e)
	g.mutated(mutation{op: opAdded, element: e})

	return e, nil
}

// Edge returns the edge with the given id.
// Returns pgm.ErrElementNotFound if absent.
// Complexity: O(1).
func (g *Graph) Edge(id string) (pgm.Edge, error) {
	g.muElem.RLock()
	defer g.muElem.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: edge %q", pgm.ErrElementNotFound, id)
	}

	return e, nil
}

// RemoveEdge deletes e from the graph and from both endpoint adjacencies.
// Other edges and both endpoints are untouched.
// Returns pgm.ErrElementNotFound if e is nil, removed, or foreign to g.
// Complexity: O(I) where I is the number of indices.
func (g *Graph) RemoveEdge(e pgm.Edge) error {
	g.muElem.Lock()
	defer g.muElem.Unlock()

	ce, err := g.ownEdge(e)
	if err != nil {
		return err
	}
	g.removeEdgeLocked(ce)

	return nil
}

// Edges yields every edge, sorted by ID.
// Complexity: O(E log E) per iteration.
func (g *Graph) Edges() iter.Seq[pgm.Edge] {
	return func(yield func(pgm.Edge) bool) {
		g.muElem.RLock()
		snapshot := make([]*Edge, 0, len(g.edges))
		for _, e := range g.edges {
			snapshot = append(snapshot, e)
		}
		g.muElem.RUnlock()
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].id < snapshot[j].id })

		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muElem.RLock()
	defer g.muElem.RUnlock()

	return len(g.edges)
}

// removeEdgeLocked unlinks e everywhere and runs the hook. Caller must hold muElem.
func (g *Graph) removeEdgeLocked(e *Edge) {
	unlink(e.out.out, e.label, e.id)
	unlink(e.in.in, e.label, e.id)
	delete(g.edges, e.id)
	e.removed = true
	g.mutated(mutation{op: opRemoved, element: e})
}

// ownEdge resolves e to a live edge of g. Caller must hold muElem.
func (g *Graph) ownEdge(e pgm.Edge) (*Edge, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil edge", pgm.ErrElementNotFound)
	}
	ce, ok := e.(*Edge)
	if !ok {
		return nil, fmt.Errorf("%w: edge %q is not in this graph", pgm.ErrElementNotFound, e.ID())
	}
	if ce == nil {
		return nil, fmt.Errorf("%w: nil edge", pgm.ErrElementNotFound)
	}
	if ce.g != g || g.edges[ce.id] != ce {
		return nil, fmt.Errorf("%w: edge %q is not in this graph", pgm.ErrElementNotFound, ce.id)
	}

	return ce, nil
}

// link inserts e into side[label], allocating the bucket lazily.
func link(side map[string]map[string]*Edge, label string, e *Edge) {
	bucket, ok := side[label]
	if !ok {
		bucket = make(map[string]*Edge)
		side[label] = bucket
	}
	bucket[e.id] = e
}

// unlink removes id from side[label] and drops the bucket once empty.
func unlink(side map[string]map[string]*Edge, label, id string) {
	bucket, ok := side[label]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(side, label)
	}
}
