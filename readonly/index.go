// File: index.go
// Role: Read-only index adapters and the kind/type-dispatching index factory.

package readonly

import (
	"iter"

	"github.com/seyyedshah/blueprints/pgm"
)

// anyIndex is the fallback adapter for indices that expose no typed surface.
type anyIndex struct {
	base pgm.AnyIndex
}

// index is the read-only adapter for manual indices over T.
type index[T pgm.Element] struct {
	base pgm.Index[T]
}

// automaticIndex is the read-only adapter for automatic indices over T.
// It additionally exposes the configured auto-index keys.
type automaticIndex[T pgm.Element] struct {
	index[T]
	auto pgm.AutomaticIndex[T]
}

var (
	_ pgm.Index[pgm.Vertex]          = index[pgm.Vertex]{}
	_ pgm.AutomaticIndex[pgm.Vertex] = automaticIndex[pgm.Vertex]{}
	_ pgm.AutomaticIndex[pgm.Edge]   = automaticIndex[pgm.Edge]{}
)

// NewIndex wraps ix according to its Kind() and Type().
// MANUAL indices get an index adapter; AUTOMATIC ones get an automatic-index
// adapter that also reports AutoIndexKeys. Nil and views are returned unchanged.
func NewIndex(ix pgm.AnyIndex) pgm.AnyIndex {
	if ix == nil || IsReadOnly(ix) {
		return ix
	}
	switch ix.Kind() {
	case pgm.VertexKind:
		return wrapIndex[pgm.Vertex](ix)
	case pgm.EdgeKind:
		return wrapIndex[pgm.Edge](ix)
	default:
		return anyIndex{base: ix}
	}
}

func wrapIndex[T pgm.Element](ix pgm.AnyIndex) pgm.AnyIndex {
	if ix.Type() == pgm.Automatic {
		if auto, ok := ix.(pgm.AutomaticIndex[T]); ok {
			return automaticIndex[T]{index: index[T]{base: auto}, auto: auto}
		}
	}
	if typed, ok := ix.(pgm.Index[T]); ok {
		return index[T]{base: typed}
	}

	return anyIndex{base: ix}
}

func (anyIndex) readOnly() {}

func (ix anyIndex) Name() string          { return ix.base.Name() }
func (ix anyIndex) Kind() pgm.ElementKind { return ix.base.Kind() }
func (ix anyIndex) Type() pgm.IndexType   { return ix.base.Type() }

func (index[T]) readOnly() {}

func (ix index[T]) Name() string          { return ix.base.Name() }
func (ix index[T]) Kind() pgm.ElementKind { return ix.base.Kind() }
func (ix index[T]) Type() pgm.IndexType   { return ix.base.Type() }

// Put returns ErrReadOnly.
func (index[T]) Put(string, any, T) error { return ErrReadOnly }

// Remove returns ErrReadOnly.
func (index[T]) Remove(string, any, T) error { return ErrReadOnly }

// Get yields read-only views of the base's matches.
func (ix index[T]) Get(key string, value any) iter.Seq[T] {
	return Seq(ix.base.Get(key, value))
}

// Count delegates to the base.
func (ix index[T]) Count(key string, value any) int { return ix.base.Count(key, value) }

// AutoIndexKeys returns a copy of the base's auto-index keys.
func (ix automaticIndex[T]) AutoIndexKeys() []string {
	keys := ix.auto.AutoIndexKeys()
	if keys == nil {
		return nil
	}

	return append([]string{}, keys...)
}
