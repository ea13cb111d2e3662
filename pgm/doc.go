// Package pgm defines the property-graph model: the capability interfaces that
// every storage backend implements and that every consumer (read-only views,
// traversals, the conformance suite) programs against.
//
// A property graph G = (V, E) is a set of vertices and directed, labeled edges.
// Every element (vertex or edge) carries an identifier and a property bag
// mapping non-empty string keys to arbitrary values.
//
// Capability sets:
//
//	Element         – ID, Kind, Property/PropertyKeys, SetProperty/RemoveProperty
//	Vertex          – Element + lazy OutEdges/InEdges adjacency views
//	Edge            – Element + Label, OutVertex (source), InVertex (target)
//	Graph           – vertex/edge lifecycle, point lookup, enumeration, Features
//	IndexableGraph  – Graph + named index factory, lookup and drop
//	Index[T]        – Put/Get/Count/Remove over (key, value) pairs
//	AutomaticIndex  – Index[T] maintained by the backend; exposes AutoIndexKeys
//
// Backend policy is declared, not inferred: Features reports whether the backend
// enumerates vertices and edges, admits parallel edges with identical
// (out, in, label), admits self-loops, and respects caller-supplied ids.
//
// Invariants every backend upholds:
//
//   - Every edge's endpoints exist in the same graph as the edge.
//   - RemoveVertex removes every incident edge (cascading deletion) before returning.
//   - An index's Type and Kind never change after creation.
//   - Self-loops and duplicate edges are admitted strictly per Features, on every
//     creation path.
//   - Automatic indices are updated inline with the mutation that triggered them.
//
// Sequences returned by the model are iter.Seq values: lazy views, not snapshots.
// Advancing a sequence while the graph mutates has backend-defined semantics.
//
// Errors:
//
//	ErrElementNotFound     – vertex/edge absent or foreign to the graph
//	ErrDuplicateID         – a respected id is already taken
//	ErrDuplicateIndexName  – an index with that name exists
//	ErrIndexNotFound       – index absent, dropped, or of another element kind
//	ErrUnsupportedTopology – self-loop on a backend that forbids loops
//	ErrAutomaticIndexWrite – direct Put/Remove on an automatic index
//	ErrInvalidPropertyKey  – empty or reserved property key
package pgm
