// File: hooks.go
// Role: The on-mutated hook driving index maintenance.
// Policy:
//   - Called by every property set/remove and element add/remove while muElem is held.
//   - Runs inline; there is no deferred or batched maintenance.

package core

import "github.com/seyyedshah/blueprints/pgm"

// mutationOp enumerates the element mutations indices observe.
type mutationOp uint8

const (
	opAdded mutationOp = iota + 1
	opRemoved
	opPropertySet
	opPropertyRemoved
)

// mutation describes one element change.
// For property operations, old/hadOld carry the previous value of key.
type mutation struct {
	op      mutationOp
	element pgm.Element
	key     string
	value   any
	old     any
	hadOld  bool
}

// mutated forwards m to every index of the element's kind.
// Caller must hold muElem (write).
func (g *Graph) mutated(m mutation) {
	g.muIndex.Lock()
	defer g.muIndex.Unlock()

	kind := m.element.Kind()
	for _, ix := range g.indices {
		if ix.Kind() != kind {
			continue
		}
		ix.observe(m)
	}
}

// propsOf returns the live property map of a core element. Caller must hold muElem.
func propsOf(el pgm.Element) map[string]any {
	switch e := el.(type) {
	case *Vertex:
		return e.props
	case *Edge:
		return e.props
	default:
		return nil
	}
}
