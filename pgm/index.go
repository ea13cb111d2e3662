// File: index.go
// Role: Index capability interfaces, generic over the element kind, plus typed accessors.
// Policy:
//   - The element kind is an explicit discriminant fixed at creation (Kind()).
//   - Typed access goes through As/AsAutomatic; a kind mismatch is ErrIndexNotFound.

package pgm

import (
	"fmt"
	"iter"
)

// AnyIndex is the kind-erased view every index exposes.
// IndexableGraph returns AnyIndex because one collection holds both kinds.
type AnyIndex interface {
	// Name returns the unique index name.
	Name() string

	// Kind returns the element kind the index holds.
	Kind() ElementKind

	// Type returns Manual or Automatic.
	Type() IndexType
}

// Index maps (key, value) pairs to sets of elements of one kind.
type Index[T Element] interface {
	AnyIndex

	// Put associates element with (key, value).
	// Automatic indices reject it with ErrAutomaticIndexWrite.
	Put(key string, value any, element T) error

	// Get yields the elements associated with (key, value).
	Get(key string, value any) iter.Seq[T]

	// Count returns the number of elements associated with (key, value).
	Count(key string, value any) int

	// Remove dissociates element from (key, value).
	// Automatic indices reject it with ErrAutomaticIndexWrite.
	Remove(key string, value any, element T) error
}

// AutomaticIndex is an Index whose entries follow element mutations.
type AutomaticIndex[T Element] interface {
	Index[T]

	// AutoIndexKeys returns the configured keys, sorted; empty means every key.
	AutoIndexKeys() []string
}

// KindOf returns the ElementKind matching the type argument (Vertex or Edge).
func KindOf[T Element]() ElementKind {
	switch any((*T)(nil)).(type) {
	case *Vertex:
		return VertexKind
	case *Edge:
		return EdgeKind
	default:
		return 0
	}
}

// As narrows ix to an Index over T.
// A nil index or a kind mismatch returns ErrIndexNotFound.
func As[T Element](ix AnyIndex) (Index[T], error) {
	if ix == nil {
		return nil, ErrIndexNotFound
	}
	typed, ok := ix.(Index[T])
	if !ok || ix.Kind() != KindOf[T]() {
		return nil, fmt.Errorf("%w: %q is a %s index, want %s", ErrIndexNotFound, ix.Name(), ix.Kind(), KindOf[T]())
	}

	return typed, nil
}

// AsAutomatic narrows ix to an AutomaticIndex over T.
// A manual index returns ErrIndexNotFound.
func AsAutomatic[T Element](ix AnyIndex) (AutomaticIndex[T], error) {
	typed, err := As[T](ix)
	if err != nil {
		return nil, err
	}
	auto, ok := typed.(AutomaticIndex[T])
	if !ok || typed.Type() != Automatic {
		return nil, fmt.Errorf("%w: %q is a %s index", ErrIndexNotFound, ix.Name(), ix.Type())
	}

	return auto, nil
}

// CreateManualIndex creates a manual index over T on g.
func CreateManualIndex[T Element](g IndexableGraph, name string, params ...Parameter) (Index[T], error) {
	ix, err := g.CreateManualIndex(name, KindOf[T](), params...)
	if err != nil {
		return nil, err
	}

	return As[T](ix)
}

// CreateAutomaticIndex creates an automatic index over T on g.
func CreateAutomaticIndex[T Element](g IndexableGraph, name string, autoKeys []string, params ...Parameter) (AutomaticIndex[T], error) {
	ix, err := g.CreateAutomaticIndex(name, KindOf[T](), autoKeys, params...)
	if err != nil {
		return nil, err
	}

	return AsAutomatic[T](ix)
}

// GetIndex looks up the index name over T on g.
func GetIndex[T Element](g IndexableGraph, name string) (Index[T], error) {
	ix, err := g.Index(name, KindOf[T]())
	if err != nil {
		return nil, err
	}

	return As[T](ix)
}
