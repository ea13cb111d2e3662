// File: graph.go
// Role: Element, Vertex, Edge and Graph capability interfaces.

package pgm

import "iter"

// Element is the identity unit shared by vertices and edges.
// An element belongs to exactly one graph and never migrates.
type Element interface {
	// ID returns the element identifier, unique per kind within its graph.
	ID() string

	// Kind reports VertexKind or EdgeKind.
	Kind() ElementKind

	// Property returns the value stored under key and whether it is present.
	Property(key string) (any, bool)

	// PropertyKeys returns the keys currently set, sorted ascending.
	PropertyKeys() []string

	// SetProperty stores value under key, replacing any previous value.
	// Automatic indices observe the change before SetProperty returns.
	SetProperty(key string, value any) error

	// RemoveProperty deletes key and returns the value it held (nil if absent).
	// Automatic indices observe the change before RemoveProperty returns.
	RemoveProperty(key string) (any, error)
}

// Vertex is an Element whose adjacency is derived by the backend.
type Vertex interface {
	Element

	// OutEdges yields edges whose out-vertex is this vertex.
	// With labels, only edges carrying one of them are yielded.
	OutEdges(labels ...string) iter.Seq[Edge]

	// InEdges yields edges whose in-vertex is this vertex.
	// With labels, only edges carrying one of them are yielded.
	InEdges(labels ...string) iter.Seq[Edge]
}

// Edge is a directed, labeled Element between two vertices of the same graph.
type Edge interface {
	Element

	// Label returns the immutable label assigned at creation.
	Label() string

	// OutVertex returns the source vertex.
	OutVertex() Vertex

	// InVertex returns the target vertex.
	InVertex() Vertex
}

// Graph owns a vertex and edge population.
type Graph interface {
	// Features reports the backend capability descriptor.
	Features() Features

	// AddVertex creates a vertex. An empty id, or a backend that ignores
	// supplied ids, lets the backend assign one. A respected id that is
	// already taken fails with ErrDuplicateID.
	AddVertex(id string) (Vertex, error)

	// Vertex returns the vertex with id or ErrElementNotFound.
	Vertex(id string) (Vertex, error)

	// RemoveVertex removes v and every edge incident to it.
	RemoveVertex(v Vertex) error

	// Vertices enumerates every vertex when SupportsVertexIteration is set.
	Vertices() iter.Seq[Vertex]

	// AddEdge creates an edge out→in with label.
	//
	// Errors:
	//   - ErrElementNotFound when out or in is not a vertex of this graph.
	//   - ErrUnsupportedTopology when out == in and self-loops are disallowed.
	//   - ErrDuplicateID when a respected id is already taken.
	//
	// When duplicate edges are disallowed and an edge with the same
	// (out, in, label) exists, AddEdge returns that edge and changes nothing.
	AddEdge(id string, out, in Vertex, label string) (Edge, error)

	// Edge returns the edge with id or ErrElementNotFound.
	Edge(id string) (Edge, error)

	// RemoveEdge removes e only.
	RemoveEdge(e Edge) error

	// Edges enumerates every edge when SupportsEdgeIteration is set.
	Edges() iter.Seq[Edge]
}

// IndexableGraph is a Graph that also owns a collection of named indices.
type IndexableGraph interface {
	Graph

	// CreateManualIndex creates an index maintained by explicit Put/Remove calls.
	// It fails with ErrDuplicateIndexName when name is taken.
	CreateManualIndex(name string, kind ElementKind, params ...Parameter) (AnyIndex, error)

	// CreateAutomaticIndex creates an index maintained by the backend.
	// An empty autoKeys indexes every property key.
	// It fails with ErrDuplicateIndexName when name is taken.
	CreateAutomaticIndex(name string, kind ElementKind, autoKeys []string, params ...Parameter) (AnyIndex, error)

	// Index returns the named index of the given kind, or ErrIndexNotFound.
	Index(name string, kind ElementKind) (AnyIndex, error)

	// Indices yields every index, one per underlying index.
	Indices() iter.Seq[AnyIndex]

	// DropIndex removes the index and all of its entries.
	DropIndex(name string) error
}
