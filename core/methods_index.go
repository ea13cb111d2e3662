// File: methods_index.go
// Role: Index catalog: create, look up, enumerate, drop.
//
// Determinism:
//   - Indices() yields indices sorted by name.
//
// Concurrency:
//   - Catalog protected by muIndex; automatic index creation also holds muElem
//     (read) so the backfill sees a consistent element population.
package core

import (
	"fmt"
	"iter"
	"sort"

	"github.com/seyyedshah/blueprints/pgm"
)

// CreateManualIndex creates an index whose entries are maintained by Put/Remove.
//
// Errors:
//   - pgm.ErrDuplicateIndexName: name is taken.
//   - ErrInvalidKind: kind is neither vertex nor edge.
//
// Complexity: O(len(params)).
func (g *Graph) CreateManualIndex(name string, kind pgm.ElementKind, params ...pgm.Parameter) (pgm.AnyIndex, error) {
	return g.createIndex(name, kind, pgm.Manual, nil, params)
}

// CreateAutomaticIndex creates an index maintained by the graph on every mutation.
// An empty autoKeys covers every property key. Existing elements are indexed
// before the call returns.
//
// Errors:
//   - pgm.ErrDuplicateIndexName: name is taken.
//   - ErrInvalidKind: kind is neither vertex nor edge.
//
// Complexity: O(V or E) for the backfill.
func (g *Graph) CreateAutomaticIndex(name string, kind pgm.ElementKind, autoKeys []string, params ...pgm.Parameter) (pgm.AnyIndex, error) {
	return g.createIndex(name, kind, pgm.Automatic, autoKeys, params)
}

func (g *Graph) createIndex(name string, kind pgm.ElementKind, typ pgm.IndexType, autoKeys []string, params []pgm.Parameter) (pgm.AnyIndex, error) {
	ix, err := newIndexer(g, name, kind, typ, autoKeys, params)
	if err != nil {
		return nil, err
	}

	g.muElem.RLock()
	defer g.muElem.RUnlock()
	g.muIndex.Lock()
	defer g.muIndex.Unlock()

	if _, exists := g.indices[name]; exists {
		return nil, fmt.Errorf("%w: %q", pgm.ErrDuplicateIndexName, name)
	}
	ix.backfill(g)
	g.indices[name] = ix

	return ix, nil
}

// Index returns the named index if it holds elements of kind.
// Returns pgm.ErrIndexNotFound if absent or of another kind.
// Complexity: O(1).
func (g *Graph) Index(name string, kind pgm.ElementKind) (pgm.AnyIndex, error) {
	g.muIndex.RLock()
	defer g.muIndex.RUnlock()

	ix, ok := g.indices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", pgm.ErrIndexNotFound, name)
	}
	if ix.Kind() != kind {
		return nil, fmt.Errorf("%w: %q is a %s index, want %s", pgm.ErrIndexNotFound, name, ix.Kind(), kind)
	}

	return ix, nil
}

// Indices yields every index, sorted by name.
// Complexity: O(I log I) per iteration.
func (g *Graph) Indices() iter.Seq[pgm.AnyIndex] {
	return func(yield func(pgm.AnyIndex) bool) {
		g.muIndex.RLock()
		snapshot := make([]indexer, 0, len(g.indices))
		for _, ix := range g.indices {
			snapshot = append(snapshot, ix)
		}
		g.muIndex.RUnlock()
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Name() < snapshot[j].Name() })

		for _, ix := range snapshot {
			if !yield(ix) {
				return
			}
		}
	}
}

// DropIndex removes the named index and all of its entries.
// Handles held by callers report pgm.ErrIndexNotFound on Put/Remove afterwards.
// Returns pgm.ErrIndexNotFound if absent.
// Complexity: O(1).
func (g *Graph) DropIndex(name string) error {
	g.muIndex.Lock()
	defer g.muIndex.Unlock()

	ix, ok := g.indices[name]
	if !ok {
		return fmt.Errorf("%w: %q", pgm.ErrIndexNotFound, name)
	}
	ix.drop()
	delete(g.indices, name)

	return nil
}

// owns reports whether el is a live element of g. Caller must hold muElem.
func (g *Graph) owns(el pgm.Element) bool {
	switch e := el.(type) {
	case *Vertex:
		return e != nil && e.g == g && g.vertices[e.id] == e
	case *Edge:
		return e != nil && e.g == g && g.edges[e.id] == e
	default:
		return false
	}
}

// createDefaultIndices registers the "vertices" and "edges" automatic indices.
// Caller must not hold muElem or muIndex.
func (g *Graph) createDefaultIndices() {
	// Names are fresh and kinds are valid, so creation cannot fail.
	_, _ = g.CreateAutomaticIndex(DefaultVertexIndex, pgm.VertexKind, nil)
	_, _ = g.CreateAutomaticIndex(DefaultEdgeIndex, pgm.EdgeKind, nil)
}
