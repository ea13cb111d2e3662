// File: cases_vertex.go
// Role: Vertex suite: ids, lookup, removal, cascading deletion, properties.

package conformance

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
)

func vertexCases() []Case {
	return []Case{
		{Suite: SuiteVertex, Name: "vertex_equality", Run: vertexEquality},
		{Suite: SuiteVertex, Name: "vertex_ids", Run: vertexIDs},
		{Suite: SuiteVertex, Name: "missing_elements", Run: missingElements},
		{Suite: SuiteVertex, Name: "remove_vertex", Run: removeVertex},
		{Suite: SuiteVertex, Name: "cascading_deletion", Run: cascadingDeletion},
		{Suite: SuiteVertex, Name: "add_many_vertices", Requires: []Capability{VertexIteration}, Run: addManyVertices},
		{Suite: SuiteVertex, Name: "vertex_properties", Run: vertexProperties},
		{Suite: SuiteVertex, Name: "adjacency_label_filter", Run: adjacencyLabelFilter},
	}
}

func vertexEquality(t T, env *Env) {
	g := env.Graph(t)
	v := addVertex(t, g, env.IDs(1)[0])

	again := reload(t, g, v)
	require.True(t, v == again, "a vertex looked up twice compares equal")
	require.Equal(t, pgm.VertexKind, again.Kind())

	if env.Features.SupportsVertexIteration {
		first, ok := pgm.First(g.Vertices())
		require.True(t, ok)
		require.True(t, first == v)
	}
}

func vertexIDs(t T, env *Env) {
	g := env.Graph(t)

	a := addVertex(t, g, "marko")
	b, err := g.AddVertex("marko")
	if env.Features.IgnoresSuppliedIDs {
		require.NoError(t, err, "supplied ids are ignored, so they cannot collide")
		require.NotEqual(t, a.ID(), b.ID())
	} else {
		require.Equal(t, "marko", a.ID())
		require.ErrorIs(t, err, pgm.ErrDuplicateID)
		if env.Features.SupportsVertexIteration {
			require.Equal(t, 1, pgm.Count(g.Vertices()))
		}
	}

	gen1 := addVertex(t, g, "")
	gen2 := addVertex(t, g, "")
	require.NotEmpty(t, gen1.ID())
	require.NotEqual(t, gen1.ID(), gen2.ID(), "generated ids are unique")
	require.NotEqual(t, a.ID(), gen1.ID())
}

func missingElements(t T, env *Env) {
	g := env.Graph(t)
	_, err := g.Vertex("no-such-vertex")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	_, err = g.Edge("no-such-edge")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	require.ErrorIs(t, g.RemoveVertex(nil), pgm.ErrElementNotFound)
	require.ErrorIs(t, g.RemoveEdge(nil), pgm.ErrElementNotFound)

	if env.Features.SupportsVertexIteration {
		require.Zero(t, pgm.Count(g.Vertices()))
	}
	if env.Features.SupportsEdgeIteration {
		require.Zero(t, pgm.Count(g.Edges()))
	}
}

func removeVertex(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(2))

	require.NoError(t, g.RemoveVertex(vs[0]))
	_, err := g.Vertex(vs[0].ID())
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	require.ErrorIs(t, g.RemoveVertex(vs[0]), pgm.ErrElementNotFound, "removing twice")

	survivor := reload(t, g, vs[1])
	require.Equal(t, vs[1].ID(), survivor.ID())
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 1, pgm.Count(g.Vertices()))
	}
}

// cascadingDeletion: v1 -knows-> v2, v2 -pets-> v3, v2 -cares_for-> v3, then remove v2.
func cascadingDeletion(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	addEdge(t, g, vs[0], vs[1], "knows")
	addEdge(t, g, vs[1], vs[2], "pets")
	addEdge(t, g, vs[1], vs[2], "cares_for")
	degrees(t, [][2]int{{1, 0}, {2, 1}, {0, 2}}, vs...)

	require.NoError(t, g.RemoveVertex(vs[1]))
	degrees(t, [][2]int{{0, 0}, {0, 0}}, vs[0], vs[2])
	if env.Features.SupportsEdgeIteration {
		require.Zero(t, pgm.Count(g.Edges()))
	}
}

func addManyVertices(t T, env *Env) {
	const n = 1000
	g := env.Graph(t)

	elapsed := stopwatch()
	for i := 0; i < n; i++ {
		addVertex(t, g, fmt.Sprintf("v-%d", i))
	}
	env.Perf(g, n, "vertices added", elapsed())

	elapsed = stopwatch()
	require.Equal(t, n, pgm.Count(g.Vertices()))
	env.Perf(g, n, "vertices counted", elapsed())

	elapsed = stopwatch()
	removed := 0
	for v := range g.Vertices() {
		if removed == n/2 {
			break
		}
		require.NoError(t, g.RemoveVertex(v))
		removed++
	}
	env.Perf(g, removed, "vertices removed", elapsed())
	require.Equal(t, n-removed, pgm.Count(g.Vertices()))
}

func vertexProperties(t T, env *Env) {
	g := env.Graph(t)
	v := addVertex(t, g, env.IDs(1)[0])

	_, ok := v.Property("name")
	require.False(t, ok)
	require.Empty(t, v.PropertyKeys())

	require.NoError(t, v.SetProperty("name", "marko"))
	require.NoError(t, v.SetProperty("age", 29))
	require.NoError(t, v.SetProperty("name", "peter"), "overwrite")
	name, ok := v.Property("name")
	require.True(t, ok)
	require.Equal(t, "peter", name)
	require.ElementsMatch(t, []string{"name", "age"}, v.PropertyKeys())

	name, ok = reload(t, g, v).Property("name")
	require.True(t, ok)
	require.Equal(t, "peter", name, "properties are stored on the graph element")

	require.ErrorIs(t, v.SetProperty(pgm.KeyID, 1), pgm.ErrInvalidPropertyKey)
	require.ErrorIs(t, v.SetProperty("", 1), pgm.ErrInvalidPropertyKey)

	old, err := v.RemoveProperty("age")
	require.NoError(t, err)
	require.Equal(t, 29, old)
	old, err = v.RemoveProperty("age")
	require.NoError(t, err)
	require.Nil(t, old)
	require.Equal(t, []string{"name"}, v.PropertyKeys())
}

func adjacencyLabelFilter(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	addEdge(t, g, vs[0], vs[1], "knows")
	addEdge(t, g, vs[0], vs[2], "knows")
	addEdge(t, g, vs[0], vs[2], "created")

	require.Equal(t, 3, pgm.Count(vs[0].OutEdges()))
	require.Equal(t, 2, pgm.Count(vs[0].OutEdges("knows")))
	require.Equal(t, 1, pgm.Count(vs[0].OutEdges("created")))
	require.Equal(t, 3, pgm.Count(vs[0].OutEdges("knows", "created")))
	require.Zero(t, pgm.Count(vs[0].OutEdges("likes")))
	require.Equal(t, 1, pgm.Count(vs[2].InEdges("created")))
	require.Equal(t, 2, pgm.Count(vs[2].InEdges()))
	for e := range vs[0].OutEdges("knows") {
		require.Equal(t, "knows", e.Label())
		require.Equal(t, vs[0].ID(), e.OutVertex().ID())
	}
}
