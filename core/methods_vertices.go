// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() yields vertices sorted by ID ascending.
//
// Concurrency:
//   - Vertex catalog protected by muElem.
//   - Index maintenance runs under muIndex while muElem is held (lock order muElem -> muIndex).
package core

import (
	"fmt"
	"iter"
	"sort"
	"sync/atomic"

	"github.com/seyyedshah/blueprints/pgm"
)

// AddVertex inserts a new vertex.
//
// Implementation:
//   - Stage 1: Under muElem write lock, resolve the id: generate one when id is empty
//     or the graph ignores supplied ids; otherwise reject a taken id.
//   - Stage 2: Register the vertex and run the on-mutated hook.
//
// Errors:
//   - pgm.ErrDuplicateID: a respected id is already taken.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) (pgm.Vertex, error) {
	g.muElem.Lock()
	defer g.muElem.Unlock()

	if id == "" || g.ignoreIDs {
		id = nextID(&g.nextVertexID, vertexIDPrefix, func(s string) bool { _, ok := g.vertices[s]; return ok })
	} else if _, exists := g.vertices[id]; exists {
		return nil, fmt.Errorf("%w: vertex %q", pgm.ErrDuplicateID, id)
	}

	v := &Vertex{
		element: element{g: g, id: id, props: make(map[string]any)},
		out:     make(map[string]map[string]*Edge),
		in:      make(map[string]map[string]*Edge),
	}
	g.vertices[id] = v
	g.mutated(mutation{op: opAdded, element: v})

	return v, nil
}

// Vertex returns the vertex with the given id.
// Returns pgm.ErrElementNotFound if absent.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (pgm.Vertex, error) {
	g.muElem.RLock()
	defer g.muElem.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: vertex %q", pgm.ErrElementNotFound, id)
	}

	return v, nil
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muElem.RLock()
	defer g.muElem.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under muElem write lock, verify v belongs to this graph.
//   - Stage 2: Remove every out- and in-edge (a self-loop is removed once).
//   - Stage 3: Remove v itself; each removal runs the on-mutated hook.
//
// Behavior highlights:
//   - Cascading deletion is atomic for other callers: the whole call runs under one write lock.
//
// Errors:
//   - pgm.ErrElementNotFound: v is nil, removed, or foreign to this graph.
//
// Complexity:
//   - Time O(deg(v) · I) where I is the number of indices, Space O(deg(v)).
func (g *Graph) RemoveVertex(v pgm.Vertex) error {
	g.muElem.Lock()
	defer g.muElem.Unlock()

	cv, err := g.ownVertex(v)
	if err != nil {
		return err
	}
	for _, e := range cv.incident() {
		g.removeEdgeLocked(e)
	}
	delete(g.vertices, cv.id)
	cv.removed = true
	g.mutated(mutation{op: opRemoved, element: cv})

	return nil
}

// Vertices yields every vertex, sorted by ID.
// The population is captured when iteration starts; vertices removed meanwhile are still yielded.
// Complexity: O(V log V) per iteration.
func (g *Graph) Vertices() iter.Seq[pgm.Vertex] {
	return func(yield func(pgm.Vertex) bool) {
		g.muElem.RLock()
		snapshot := make([]*Vertex, 0, len(g.vertices))
		for _, v := range g.vertices {
			snapshot = append(snapshot, v)
		}
		g.muElem.RUnlock()
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].id < snapshot[j].id })

		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muElem.RLock()
	defer g.muElem.RUnlock()

	return len(g.vertices)
}

// OutEdges yields edges leaving v, restricted to labels when given, sorted by ID.
func (v *Vertex) OutEdges(labels ...string) iter.Seq[pgm.Edge] {
	return v.adjacent(func(x *Vertex) map[string]map[string]*Edge { return x.out }, labels)
}

// InEdges yields edges entering v, restricted to labels when given, sorted by ID.
func (v *Vertex) InEdges(labels ...string) iter.Seq[pgm.Edge] {
	return v.adjacent(func(x *Vertex) map[string]map[string]*Edge { return x.in }, labels)
}

// adjacent snapshots one adjacency side under the read lock and yields it lazily.
func (v *Vertex) adjacent(side func(*Vertex) map[string]map[string]*Edge, labels []string) iter.Seq[pgm.Edge] {
	return func(yield func(pgm.Edge) bool) {
		v.g.muElem.RLock()
		buckets := side(v)
		var snapshot []*Edge
		if len(labels) == 0 {
			for _, bucket := range buckets {
				for _, e := range bucket {
					snapshot = append(snapshot, e)
				}
			}
		} else {
			seen := make(map[string]struct{}, len(labels))
			for _, label := range labels {
				if _, dup := seen[label]; dup {
					continue
				}
				seen[label] = struct{}{}
				for _, e := range buckets[label] {
					snapshot = append(snapshot, e)
				}
			}
		}
		v.g.muElem.RUnlock()
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].id < snapshot[j].id })

		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// incident returns every edge touching v once, self-loops included once.
// Caller must hold muElem.
func (v *Vertex) incident() []*Edge {
	seen := make(map[string]*Edge)
	for _, bucket := range v.out {
		for id, e := range bucket {
			seen[id] = e
		}
	}
	for _, bucket := range v.in {
		for id, e := range bucket {
			seen[id] = e
		}
	}
	edges := make([]*Edge, 0, len(seen))
	for _, e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].id < edges[j].id })

	return edges
}

// ownVertex resolves v to a live vertex of g. Caller must hold muElem.
func (g *Graph) ownVertex(v pgm.Vertex) (*Vertex, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vertex", pgm.ErrElementNotFound)
	}
	cv, ok := v.(*Vertex)
	if !ok {
		return nil, fmt.Errorf("%w: vertex %q is not in this graph", pgm.ErrElementNotFound, v.ID())
	}
	if cv == nil {
		return nil, fmt.Errorf("%w: nil vertex", pgm.ErrElementNotFound)
	}
	if cv.g != g || g.vertices[cv.id] != cv {
		return nil, fmt.Errorf("%w: vertex %q is not in this graph", pgm.ErrElementNotFound, cv.id)
	}

	return cv, nil
}

// nextID draws "<prefix><n>" from counter until taken reports false.
func nextID(counter *uint64, prefix string, taken func(string) bool) string {
	for {
		id := fmt.Sprintf("%s%d", prefix, atomic.AddUint64(counter, 1))
		if !taken(id) {
			return id
		}
	}
}
