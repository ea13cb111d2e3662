// Package core provides the in-memory reference implementation of
// pgm.IndexableGraph: a thread-safe property multigraph with manual and
// automatic indices.
//
// The Graph G = (V,E) supports:
//
//   - Directed, labeled edges with property bags on every element
//   - Parallel edges sharing (out, in, label) (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Caller-supplied ids, or generated ids “v1”, “e1”, … (WithIgnoreSuppliedIDs)
//   - Default automatic indices “vertices” and “edges” (WithDefaultIndices)
//   - Label-bucketed adjacency: out[label][edgeID], in[label][edgeID]
//   - Separate sync.RWMutex for elements (muElem) and indices (muIndex)
//
// Edge policy:
//
//	– Without WithMultiEdges, AddEdge(out, in, label) on an existing
//	  (out, in, label) triple returns the existing edge; degrees do not change.
//	– Without WithLoops, AddEdge(v, v, ...) → pgm.ErrUnsupportedTopology.
//	– Both policies apply to self-loops independently: a graph with loops but
//	  without multi-edges keeps one self-loop per (v, label).
//
// Index maintenance:
//
//	Every property set/remove and every element add/remove calls the graph's
//	on-mutated hook before returning. The hook updates each automatic index of
//	the element's kind whose key set covers the property, removing the stale
//	(key, oldValue) entry before inserting (key, newValue). Removing an element
//	drops it from every index, manual ones included.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) (pgm.Vertex, error)   // O(1)
//	Vertex(id string) (pgm.Vertex, error)      // O(1)
//	RemoveVertex(v pgm.Vertex) error           // O(deg(v) + I)
//	Vertices() iter.Seq[pgm.Vertex]            // O(V·log V) snapshot of ids, lazy yield
//
//	// Edge lifecycle
//	AddEdge(id string, out, in pgm.Vertex, label string) (pgm.Edge, error) // O(1)†
//	Edge(id string) (pgm.Edge, error)          // O(1)
//	RemoveEdge(e pgm.Edge) error               // O(1 + I)
//	Edges() iter.Seq[pgm.Edge]                 // O(E·log E)
//
//	// Indices
//	CreateManualIndex / CreateAutomaticIndex / Index / Indices / DropIndex
//
//	// Maintenance
//	Stats() *GraphStats
//	Clear()
//
// † O(deg_label(out)) when multi-edges are disabled (duplicate scan).
//
// Lazy sequences snapshot ids under the read lock and yield outside it, so a
// consumer may mutate the graph while iterating without deadlock. Elements
// removed mid-iteration are still yielded from the snapshot.
package core
