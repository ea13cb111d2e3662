package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// link describes one labelled edge out→in.
type link struct {
	out, label, in string
}

// buildGraph creates a core graph holding links, with edge IDs "e01", "e02", ...
// in slice order, plus the isolated vertices.
func buildGraph(t testing.TB, links []link, isolated []string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i, l := range links {
		out := ensureVertex(t, g, l.out)
		in := ensureVertex(t, g, l.in)
		_, err := g.AddEdge(fmt.Sprintf("e%02d", i+1), out, in, l.label)
		require.NoError(t, err, "AddEdge(%s-%s->%s)", l.out, l.label, l.in)
	}
	for _, id := range isolated {
		ensureVertex(t, g, id)
	}

	return g
}

func ensureVertex(t testing.TB, g pgm.Graph, id string) pgm.Vertex {
	t.Helper()
	if v, err := g.Vertex(id); err == nil {
		return v
	}
	v, err := g.AddVertex(id)
	require.NoError(t, err, "AddVertex(%q)", id)

	return v
}

// deps is a small DAG:
//
//	a -dep-> b -dep-> d
//	a -dep-> c -dep-> d
//	a -opt-> e        f (isolated)
var deps = []link{
	{"a", "dep", "b"}, // e01
	{"a", "dep", "c"}, // e02
	{"b", "dep", "d"}, // e03
	{"c", "dep", "d"}, // e04
	{"a", "opt", "e"}, // e05
}

// noVertexIteration hides vertex enumeration from the features of a graph.
type noVertexIteration struct {
	pgm.Graph
}

func (noVertexIteration) Features() pgm.Features { return pgm.Features{} }
