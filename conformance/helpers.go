package conformance

import (
	"slices"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
)

func addVertex(t T, g pgm.Graph, id string) pgm.Vertex {
	t.Helper()
	v, err := g.AddVertex(id)
	require.NoError(t, err, "AddVertex(%q)", id)
	require.NotNil(t, v)

	return v
}

func addVertices(t T, g pgm.Graph, ids []string) []pgm.Vertex {
	t.Helper()
	vs := make([]pgm.Vertex, len(ids))
	for i, id := range ids {
		vs[i] = addVertex(t, g, id)
	}

	return vs
}

func addEdge(t T, g pgm.Graph, out, in pgm.Vertex, label string) pgm.Edge {
	t.Helper()
	e, err := g.AddEdge("", out, in, label)
	require.NoError(t, err, "AddEdge(%s, %s, %q)", out.ID(), in.ID(), label)
	require.NotNil(t, e)

	return e
}

// reload re-reads v from g by its actual id.
func reload(t T, g pgm.Graph, v pgm.Vertex) pgm.Vertex {
	t.Helper()
	got, err := g.Vertex(v.ID())
	require.NoError(t, err, "Vertex(%q)", v.ID())

	return got
}

// degrees asserts out/in degree pairs for each vertex.
func degrees(t T, want [][2]int, vs ...pgm.Vertex) {
	t.Helper()
	for i, v := range vs {
		require.Equal(t, want[i][0], pgm.Count(v.OutEdges()), "out-degree of %s", v.ID())
		require.Equal(t, want[i][1], pgm.Count(v.InEdges()), "in-degree of %s", v.ID())
	}
}

// isLoop asserts e starts and ends at the same vertex.
func isLoop(t T, e pgm.Edge) {
	t.Helper()
	require.Equal(t, e.OutVertex().ID(), e.InVertex().ID())
	require.True(t, e.OutVertex() == e.InVertex(), "endpoints of self-loop %s compare equal", e.ID())
}

// census is what a rejected write must leave unchanged.
type census struct {
	Vertices int
	Edges    int
	Indices  []string
}

func takeCensus(g pgm.Graph, vs []pgm.Vertex, es []pgm.Edge) census {
	c := census{}
	for _, v := range vs {
		if _, err := g.Vertex(v.ID()); err == nil {
			c.Vertices++
		}
	}
	for _, e := range es {
		if _, err := g.Edge(e.ID()); err == nil {
			c.Edges++
		}
	}
	if ig, ok := g.(pgm.IndexableGraph); ok {
		for ix := range ig.Indices() {
			c.Indices = append(c.Indices, ix.Name()+":"+ix.Type().String())
		}
		slices.Sort(c.Indices)
	}

	return c
}
