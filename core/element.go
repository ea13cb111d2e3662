// File: element.go
// Role: Property bag operations shared by Vertex and Edge.
// Concurrency:
//   - Properties are guarded by the owning graph's muElem.
//   - Mutations invoke the on-mutated hook while muElem is still held, so a
//     reader that observes the new value also observes the updated indices.

package core

import (
	"fmt"
	"sort"

	"github.com/seyyedshah/blueprints/pgm"
)

// ID returns the element identifier.
func (e *element) ID() string { return e.id }

// Property returns the value stored under key.
// Complexity: O(1).
func (e *element) Property(key string) (any, bool) {
	e.g.muElem.RLock()
	defer e.g.muElem.RUnlock()
	v, ok := e.props[key]

	return v, ok
}

// PropertyKeys returns the keys currently set, sorted ascending.
// Complexity: O(k log k).
func (e *element) PropertyKeys() []string {
	e.g.muElem.RLock()
	keys := make([]string, 0, len(e.props))
	for k := range e.props {
		keys = append(keys, k)
	}
	e.g.muElem.RUnlock()
	sort.Strings(keys)

	return keys
}

// setProperty stores value under key on self and runs the on-mutated hook.
func (e *element) setProperty(self pgm.Element, key string, value any) error {
	if !pgm.ValidPropertyKey(self.Kind(), key) {
		return fmt.Errorf("%w: %q on %s %q", pgm.ErrInvalidPropertyKey, key, self.Kind(), e.id)
	}
	e.g.muElem.Lock()
	defer e.g.muElem.Unlock()
	if e.removed {
		return fmt.Errorf("%w: %s %q was removed", pgm.ErrElementNotFound, self.Kind(), e.id)
	}

	old, had := e.props[key]
	e.props[key] = value
	e.g.mutated(mutation{op: opPropertySet, element: self, key: key, value: value, old: old, hadOld: had})

	return nil
}

// removeProperty deletes key from self and runs the on-mutated hook.
func (e *element) removeProperty(self pgm.Element, key string) (any, error) {
	e.g.muElem.Lock()
	defer e.g.muElem.Unlock()
	if e.removed {
		return nil, fmt.Errorf("%w: %s %q was removed", pgm.ErrElementNotFound, self.Kind(), e.id)
	}

	old, had := e.props[key]
	if !had {
		return nil, nil
	}
	delete(e.props, key)
	e.g.mutated(mutation{op: opPropertyRemoved, element: self, key: key, old: old, hadOld: true})

	return old, nil
}

// Kind reports pgm.VertexKind.
func (v *Vertex) Kind() pgm.ElementKind { return pgm.VertexKind }

// SetProperty implements pgm.Element.
func (v *Vertex) SetProperty(key string, value any) error {
	return v.setProperty(v, key, value)
}

// RemoveProperty implements pgm.Element.
func (v *Vertex) RemoveProperty(key string) (any, error) {
	return v.removeProperty(v, key)
}

// String returns "v[<id>]".
func (v *Vertex) String() string { return "v[" + v.id + "]" }

// Kind reports pgm.EdgeKind.
func (e *Edge) Kind() pgm.ElementKind { return pgm.EdgeKind }

// SetProperty implements pgm.Element.
func (e *Edge) SetProperty(key string, value any) error {
	return e.setProperty(e, key, value)
}

// RemoveProperty implements pgm.Element.
func (e *Edge) RemoveProperty(key string) (any, error) {
	return e.removeProperty(e, key)
}

// Label returns the label assigned at creation.
func (e *Edge) Label() string { return e.label }

// OutVertex returns the source vertex.
func (e *Edge) OutVertex() pgm.Vertex { return e.out }

// InVertex returns the target vertex.
func (e *Edge) InVertex() pgm.Vertex { return e.in }

// String returns "e[<id>][<out>-<label>-><in>]".
func (e *Edge) String() string {
	return "e[" + e.id + "][" + e.out.id + "-" + e.label + "->" + e.in.id + "]"
}
