// File: graph.go
// Role: Read-only graph adapters.
// Policy:
//   - Reads delegate to the base and wrap every returned element, index or sequence.
//   - Writes return ErrReadOnly without calling the base.

package readonly

import (
	"fmt"
	"iter"

	"github.com/seyyedshah/blueprints/pgm"
)

// graph is the read-only pgm.Graph adapter.
type graph struct {
	base pgm.Graph
}

// indexableGraph is the read-only pgm.IndexableGraph adapter.
type indexableGraph struct {
	graph
	indexed pgm.IndexableGraph
}

var (
	_ pgm.Graph          = graph{}
	_ pgm.IndexableGraph = indexableGraph{}
)

// NewGraph returns a read-only view of base.
// When base is a pgm.IndexableGraph the view is one too, so no capability is hidden.
// Nil and views are returned unchanged.
func NewGraph(base pgm.Graph) pgm.Graph {
	if base == nil || IsReadOnly(base) {
		return base
	}
	if ig, ok := base.(pgm.IndexableGraph); ok {
		return indexableGraph{graph: graph{base: ig}, indexed: ig}
	}

	return graph{base: base}
}

// NewIndexableGraph returns a read-only view of base.
// Nil and views are returned unchanged.
func NewIndexableGraph(base pgm.IndexableGraph) pgm.IndexableGraph {
	if base == nil || IsReadOnly(base) {
		return base
	}

	return indexableGraph{graph: graph{base: base}, indexed: base}
}

func (graph) readOnly() {}

// Features reports the base's features unchanged.
func (g graph) Features() pgm.Features { return g.base.Features() }

// AddVertex returns ErrReadOnly.
func (graph) AddVertex(string) (pgm.Vertex, error) { return nil, ErrReadOnly }

// Vertex returns a read-only view of the base vertex id.
func (g graph) Vertex(id string) (pgm.Vertex, error) {
	v, err := g.base.Vertex(id)
	if err != nil {
		return nil, err
	}

	return NewVertex(v), nil
}

// RemoveVertex returns ErrReadOnly.
func (graph) RemoveVertex(pgm.Vertex) error { return ErrReadOnly }

// Vertices yields read-only views of the base's vertices.
func (g graph) Vertices() iter.Seq[pgm.Vertex] { return Seq(g.base.Vertices()) }

// AddEdge returns ErrReadOnly.
func (graph) AddEdge(string, pgm.Vertex, pgm.Vertex, string) (pgm.Edge, error) {
	return nil, ErrReadOnly
}

// Edge returns a read-only view of the base edge id.
func (g graph) Edge(id string) (pgm.Edge, error) {
	e, err := g.base.Edge(id)
	if err != nil {
		return nil, err
	}

	return NewEdge(e), nil
}

// RemoveEdge returns ErrReadOnly.
func (graph) RemoveEdge(pgm.Edge) error { return ErrReadOnly }

// Edges yields read-only views of the base's edges.
func (g graph) Edges() iter.Seq[pgm.Edge] { return Seq(g.base.Edges()) }

// String renders the base with a "ro:" prefix.
func (g graph) String() string { return fmt.Sprintf("ro:%v", g.base) }

// CreateManualIndex returns ErrReadOnly.
func (indexableGraph) CreateManualIndex(string, pgm.ElementKind, ...pgm.Parameter) (pgm.AnyIndex, error) {
	return nil, ErrReadOnly
}

// CreateAutomaticIndex returns ErrReadOnly.
func (indexableGraph) CreateAutomaticIndex(string, pgm.ElementKind, []string, ...pgm.Parameter) (pgm.AnyIndex, error) {
	return nil, ErrReadOnly
}

// DropIndex returns ErrReadOnly.
func (indexableGraph) DropIndex(string) error { return ErrReadOnly }

// Index returns a read-only view of the named base index, dispatched on its Type.
func (g indexableGraph) Index(name string, kind pgm.ElementKind) (pgm.AnyIndex, error) {
	ix, err := g.indexed.Index(name, kind)
	if err != nil {
		return nil, err
	}

	return NewIndex(ix), nil
}

// Indices maps every base index through NewIndex as it is produced.
func (g indexableGraph) Indices() iter.Seq[pgm.AnyIndex] {
	seq := g.indexed.Indices()
	if seq == nil {
		return func(func(pgm.AnyIndex) bool) {}
	}

	return pgm.Map(seq, NewIndex)
}
