// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for blueprints/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep degree/count assertions readable (outDeg/inDeg helpers).

package core_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
)

// Common labels used across core tests.
const (
	LabelKnows    = "knows"
	LabelPets     = "pets"
	LabelCaresFor = "cares_for"
	LabelSelf     = "is_self"
)

// Common property keys and values.
const (
	KeyName = "name"
	KeyAge  = "age"

	NameMarko = "marko"
	NamePeter = "peter"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewGraphFull returns a graph with multi-edges and loops enabled.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithMultiEdges(), core.WithLoops())
}

// mustVertex adds a vertex or fails the test.
func mustVertex(t *testing.T, g pgm.Graph, id string) pgm.Vertex {
	t.Helper()
	v, err := g.AddVertex(id)
	require.NoError(t, err, "AddVertex(%q)", id)

	return v
}

// mustEdge adds an edge or fails the test.
func mustEdge(t *testing.T, g pgm.Graph, out, in pgm.Vertex, label string) pgm.Edge {
	t.Helper()
	e, err := g.AddEdge("", out, in, label)
	require.NoError(t, err, "AddEdge(%s,%s,%s)", out.ID(), in.ID(), label)

	return e
}

// outDeg counts the out-edges of v.
func outDeg(v pgm.Vertex, labels ...string) int { return pgm.Count(v.OutEdges(labels...)) }

// inDeg counts the in-edges of v.
func inDeg(v pgm.Vertex, labels ...string) int { return pgm.Count(v.InEdges(labels...)) }

// idsOf collects the identifiers yielded by seq.
func idsOf[T pgm.Element](seq iter.Seq[T]) []string {
	var ids []string
	for e := range seq {
		ids = append(ids, e.ID())
	}

	return ids
}
