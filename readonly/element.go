// File: element.go
// Role: Read-only element adapters and the kind-dispatching element factory.

package readonly

import (
	"iter"

	"github.com/seyyedshah/blueprints/pgm"
)

// element is the fallback adapter for elements that are neither a
// pgm.Vertex nor a pgm.Edge.
type element struct {
	base pgm.Element
}

// vertex is the read-only pgm.Vertex adapter.
type vertex struct {
	base pgm.Vertex
}

// edge is the read-only pgm.Edge adapter.
type edge struct {
	base pgm.Edge
}

var (
	_ pgm.Element = element{}
	_ pgm.Vertex  = vertex{}
	_ pgm.Edge    = edge{}
)

// NewElement wraps el according to its Kind(). Nil and views are returned unchanged.
func NewElement(el pgm.Element) pgm.Element {
	if el == nil || IsReadOnly(el) {
		return el
	}
	switch el.Kind() {
	case pgm.VertexKind:
		if v, ok := el.(pgm.Vertex); ok {
			return vertex{base: v}
		}
	case pgm.EdgeKind:
		if e, ok := el.(pgm.Edge); ok {
			return edge{base: e}
		}
	}

	return element{base: el}
}

// NewVertex wraps v. Nil and views are returned unchanged.
func NewVertex(v pgm.Vertex) pgm.Vertex {
	if v == nil || IsReadOnly(v) {
		return v
	}

	return vertex{base: v}
}

// NewEdge wraps e. Nil and views are returned unchanged.
func NewEdge(e pgm.Edge) pgm.Edge {
	if e == nil || IsReadOnly(e) {
		return e
	}

	return edge{base: e}
}

// wrap applies the adapter matching T to el.
func wrap[T pgm.Element](el T) T {
	var out any
	switch pgm.KindOf[T]() {
	case pgm.VertexKind:
		v, _ := any(el).(pgm.Vertex)
		out = NewVertex(v)
	case pgm.EdgeKind:
		e, _ := any(el).(pgm.Edge)
		out = NewEdge(e)
	default:
		x, _ := any(el).(pgm.Element)
		out = NewElement(x)
	}
	w, _ := out.(T)

	return w
}

// viewOf wraps property values that are themselves elements or indices.
func viewOf(value any, ok bool) (any, bool) {
	switch v := value.(type) {
	case pgm.Element:
		return NewElement(v), ok
	case pgm.AnyIndex:
		return NewIndex(v), ok
	}

	return value, ok
}

func (element) readOnly() {}

func (el element) ID() string                      { return el.base.ID() }
func (el element) Kind() pgm.ElementKind           { return el.base.Kind() }
func (el element) Property(key string) (any, bool) { return viewOf(el.base.Property(key)) }
func (el element) PropertyKeys() []string          { return el.base.PropertyKeys() }

func (element) SetProperty(string, any) error      { return ErrReadOnly }
func (element) RemoveProperty(string) (any, error) { return nil, ErrReadOnly }

func (vertex) readOnly() {}

func (v vertex) ID() string                      { return v.base.ID() }
func (v vertex) Kind() pgm.ElementKind           { return v.base.Kind() }
func (v vertex) Property(key string) (any, bool) { return viewOf(v.base.Property(key)) }
func (v vertex) PropertyKeys() []string          { return v.base.PropertyKeys() }

func (vertex) SetProperty(string, any) error      { return ErrReadOnly }
func (vertex) RemoveProperty(string) (any, error) { return nil, ErrReadOnly }

// OutEdges yields read-only views of the base's out-edges.
func (v vertex) OutEdges(labels ...string) iter.Seq[pgm.Edge] {
	return Seq(v.base.OutEdges(labels...))
}

// InEdges yields read-only views of the base's in-edges.
func (v vertex) InEdges(labels ...string) iter.Seq[pgm.Edge] {
	return Seq(v.base.InEdges(labels...))
}

// String renders the base with a "ro:" prefix.
func (v vertex) String() string { return "ro:" + describe(v.base) }

func (edge) readOnly() {}

func (e edge) ID() string                      { return e.base.ID() }
func (e edge) Kind() pgm.ElementKind           { return e.base.Kind() }
func (e edge) Property(key string) (any, bool) { return viewOf(e.base.Property(key)) }
func (e edge) PropertyKeys() []string          { return e.base.PropertyKeys() }
func (e edge) Label() string                   { return e.base.Label() }

func (edge) SetProperty(string, any) error      { return ErrReadOnly }
func (edge) RemoveProperty(string) (any, error) { return nil, ErrReadOnly }

// OutVertex returns a read-only view of the source vertex.
func (e edge) OutVertex() pgm.Vertex { return NewVertex(e.base.OutVertex()) }

// InVertex returns a read-only view of the target vertex.
func (e edge) InVertex() pgm.Vertex { return NewVertex(e.base.InVertex()) }

// String renders the base with a "ro:" prefix.
func (e edge) String() string { return "ro:" + describe(e.base) }
