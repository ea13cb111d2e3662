// File: index.go
// Role: Manual and automatic indices, generic over the element kind.
// Determinism:
//   - Get yields elements sorted by ID.
// Concurrency:
//   - Entries are guarded by the graph's muIndex.
//   - Put/Remove hold muElem (read) to validate ownership, then muIndex (write).

package core

import (
	"fmt"
	"iter"
	"reflect"
	"sort"

	"github.com/seyyedshah/blueprints/pgm"
)

// indexer is the kind-erased view the graph keeps in its catalog.
type indexer interface {
	pgm.AnyIndex

	// observe applies one element mutation. Caller holds muIndex (write).
	observe(m mutation)

	// backfill indexes every live element of the index kind. Caller holds muElem and muIndex.
	backfill(g *Graph)

	// drop invalidates the index and clears its entries. Caller holds muIndex (write).
	drop()
}

// Index is a core index over elements of kind T (pgm.Vertex or pgm.Edge).
//
// Entries are stored as key → value → element ID → element.
type Index[T pgm.Element] struct {
	g        *Graph
	name     string
	kind     pgm.ElementKind
	typ      pgm.IndexType
	autoKeys map[string]struct{} // empty: every key (automatic only)
	params   []pgm.Parameter
	dropped  bool
	entries  map[string]map[any]map[string]T
}

var (
	_ pgm.AutomaticIndex[pgm.Vertex] = (*Index[pgm.Vertex])(nil)
	_ pgm.AutomaticIndex[pgm.Edge]   = (*Index[pgm.Edge])(nil)
)

// newIndexer builds an empty index whose element type matches kind.
func newIndexer(g *Graph, name string, kind pgm.ElementKind, typ pgm.IndexType, autoKeys []string, params []pgm.Parameter) (indexer, error) {
	switch kind {
	case pgm.VertexKind:
		return newIndex[pgm.Vertex](g, name, kind, typ, autoKeys, params), nil
	case pgm.EdgeKind:
		return newIndex[pgm.Edge](g, name, kind, typ, autoKeys, params), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
}

func newIndex[T pgm.Element](g *Graph, name string, kind pgm.ElementKind, typ pgm.IndexType, autoKeys []string, params []pgm.Parameter) *Index[T] {
	keys := make(map[string]struct{}, len(autoKeys))
	for _, k := range autoKeys {
		keys[k] = struct{}{}
	}

	return &Index[T]{
		g:        g,
		name:     name,
		kind:     kind,
		typ:      typ,
		autoKeys: keys,
		params:   append([]pgm.Parameter(nil), params...),
		entries:  make(map[string]map[any]map[string]T),
	}
}

// Name returns the index name.
func (ix *Index[T]) Name() string { return ix.name }

// Kind returns the element kind of the index.
func (ix *Index[T]) Kind() pgm.ElementKind { return ix.kind }

// Type returns pgm.Manual or pgm.Automatic.
func (ix *Index[T]) Type() pgm.IndexType { return ix.typ }

// Parameters returns the creation parameters, unmodified and in order.
func (ix *Index[T]) Parameters() []pgm.Parameter {
	return append([]pgm.Parameter(nil), ix.params...)
}

// AutoIndexKeys returns the configured keys sorted; nil for manual indices,
// empty for automatic indices covering every key.
func (ix *Index[T]) AutoIndexKeys() []string {
	if ix.typ != pgm.Automatic {
		return nil
	}
	keys := make([]string, 0, len(ix.autoKeys))
	for k := range ix.autoKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Put associates element with (key, value).
//
// Errors:
//   - pgm.ErrAutomaticIndexWrite: the index is automatic.
//   - pgm.ErrIndexNotFound: the index was dropped.
//   - pgm.ErrElementNotFound: element is not a live element of this graph.
func (ix *Index[T]) Put(key string, value any, element T) error {
	if ix.typ == pgm.Automatic {
		return fmt.Errorf("%w: put on %q", pgm.ErrAutomaticIndexWrite, ix.name)
	}
	ix.g.muElem.RLock()
	defer ix.g.muElem.RUnlock()
	if !ix.g.owns(element) {
		return fmt.Errorf("%w: %s is not in this graph", pgm.ErrElementNotFound, ix.kind)
	}

	ix.g.muIndex.Lock()
	defer ix.g.muIndex.Unlock()
	if ix.dropped {
		return fmt.Errorf("%w: %q was dropped", pgm.ErrIndexNotFound, ix.name)
	}
	ix.add(key, value, element)

	return nil
}

// Remove dissociates element from (key, value). Removing an absent entry is a no-op.
//
// Errors:
//   - pgm.ErrAutomaticIndexWrite: the index is automatic.
//   - pgm.ErrIndexNotFound: the index was dropped.
func (ix *Index[T]) Remove(key string, value any, element T) error {
	if ix.typ == pgm.Automatic {
		return fmt.Errorf("%w: remove on %q", pgm.ErrAutomaticIndexWrite, ix.name)
	}
	if any(element) == nil {
		return fmt.Errorf("%w: nil %s", pgm.ErrElementNotFound, ix.kind)
	}
	ix.g.muIndex.Lock()
	defer ix.g.muIndex.Unlock()
	if ix.dropped {
		return fmt.Errorf("%w: %q was dropped", pgm.ErrIndexNotFound, ix.name)
	}
	ix.remove(key, value, element.ID())

	return nil
}

// Get yields the elements associated with (key, value), sorted by ID.
// The entry set is captured when iteration starts. A dropped index yields nothing.
func (ix *Index[T]) Get(key string, value any) iter.Seq[T] {
	return func(yield func(T) bool) {
		ix.g.muIndex.RLock()
		bucket := ix.entries[key][valueKey(value)]
		snapshot := make([]T, 0, len(bucket))
		for _, el := range bucket {
			snapshot = append(snapshot, el)
		}
		ix.g.muIndex.RUnlock()
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID() < snapshot[j].ID() })

		for _, el := range snapshot {
			if !yield(el) {
				return
			}
		}
	}
}

// Count returns the number of elements associated with (key, value).
func (ix *Index[T]) Count(key string, value any) int {
	ix.g.muIndex.RLock()
	defer ix.g.muIndex.RUnlock()

	return len(ix.entries[key][valueKey(value)])
}

// String returns "index[<name>:<kind>:<TYPE>]".
func (ix *Index[T]) String() string {
	return fmt.Sprintf("index[%s:%s:%s]", ix.name, ix.kind, ix.typ)
}

// covers reports whether an automatic index maintains key.
func (ix *Index[T]) covers(key string) bool {
	if ix.typ != pgm.Automatic {
		return false
	}
	if len(ix.autoKeys) == 0 {
		return true
	}
	_, ok := ix.autoKeys[key]

	return ok
}

// observe implements indexer.
func (ix *Index[T]) observe(m mutation) {
	el, ok := m.element.(T)
	if !ok || ix.dropped {
		return
	}
	switch m.op {
	case opAdded:
		for k, v := range propsOf(m.element) {
			if ix.covers(k) {
				ix.add(k, v, el)
			}
		}
	case opRemoved:
		// Manual entries may use arbitrary keys, so every bucket is scanned.
		ix.forget(el.ID())
	case opPropertySet:
		if !ix.covers(m.key) {
			return
		}
		if m.hadOld {
			ix.remove(m.key, m.old, el.ID())
		}
		ix.add(m.key, m.value, el)
	case opPropertyRemoved:
		if ix.covers(m.key) && m.hadOld {
			ix.remove(m.key, m.old, el.ID())
		}
	}
}

// backfill implements indexer.
func (ix *Index[T]) backfill(g *Graph) {
	if ix.typ != pgm.Automatic {
		return
	}
	switch ix.kind {
	case pgm.VertexKind:
		for _, v := range g.vertices {
			ix.observe(mutation{op: opAdded, element: v})
		}
	case pgm.EdgeKind:
		for _, e := range g.edges {
			ix.observe(mutation{op: opAdded, element: e})
		}
	}
}

// drop implements indexer.
func (ix *Index[T]) drop() {
	ix.dropped = true
	ix.entries = make(map[string]map[any]map[string]T)
}

func (ix *Index[T]) add(key string, value any, el T) {
	values, ok := ix.entries[key]
	if !ok {
		values = make(map[any]map[string]T)
		ix.entries[key] = values
	}
	vk := valueKey(value)
	bucket, ok := values[vk]
	if !ok {
		bucket = make(map[string]T)
		values[vk] = bucket
	}
	bucket[el.ID()] = el
}

func (ix *Index[T]) remove(key string, value any, id string) {
	values, ok := ix.entries[key]
	if !ok {
		return
	}
	vk := valueKey(value)
	bucket, ok := values[vk]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(values, vk)
	}
	if len(values) == 0 {
		delete(ix.entries, key)
	}
}

func (ix *Index[T]) forget(id string) {
	for key, values := range ix.entries {
		for vk, bucket := range values {
			delete(bucket, id)
			if len(bucket) == 0 {
				delete(values, vk)
			}
		}
		if len(values) == 0 {
			delete(ix.entries, key)
		}
	}
}

// valueKey maps a property value to a usable map key.
// Values that cannot be hashed (slices, maps, funcs, or composites reaching
// one through an interface) are keyed by their %T:%#v rendering.
func valueKey(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v).Comparable() && hashable(reflect.ValueOf(v)) {
		return v
	}

	return fmt.Sprintf("%T:%#v", v, v)
}

// hashable reports whether v can be used as a map key without panicking.
// Comparable types may still hold an unhashable dynamic value in an
// interface field or array element, so the value itself is walked.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
	}

	return true
}
