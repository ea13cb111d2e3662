// File: cases_edge.go
// Role: Edge suite: identity, degree bookkeeping, duplicate and self-loop policy.

package conformance

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
)

func edgeCases() []Case {
	return []Case{
		{Suite: SuiteEdge, Name: "edge_equality", Run: edgeEquality},
		{Suite: SuiteEdge, Name: "add_edges", Run: addEdges},
		{Suite: SuiteEdge, Name: "add_many_edges", Run: addManyEdges},
		{Suite: SuiteEdge, Name: "remove_many_edges", Run: removeManyEdges},
		{Suite: SuiteEdge, Name: "adding_duplicate_edges", Run: addingDuplicateEdges},
		{Suite: SuiteEdge, Name: "remove_edges_by_removing_vertex", Run: removeEdgesByRemovingVertex},
		{Suite: SuiteEdge, Name: "remove_edges", Run: removeEdges},
		{Suite: SuiteEdge, Name: "adding_self_loops", Requires: []Capability{SelfLoops}, Run: addingSelfLoops},
		{Suite: SuiteEdge, Name: "remove_self_loops", Requires: []Capability{SelfLoops}, Run: removeSelfLoops},
		{Suite: SuiteEdge, Name: "self_loop_policy", Run: selfLoopPolicy},
		{Suite: SuiteEdge, Name: "edge_iterator", Requires: []Capability{EdgeIteration}, Run: edgeIterator},
		{Suite: SuiteEdge, Name: "edge_endpoints_must_belong", Run: edgeEndpointsMustBelong},
		{Suite: SuiteEdge, Name: "edge_lookup", Run: edgeLookup},
		{Suite: SuiteEdge, Name: "edge_properties", Run: edgeProperties},
	}
}

func edgeEquality(t T, env *Env) {
	g := env.Graph(t)
	ids := env.IDs(2)
	v := addVertex(t, g, ids[0])
	u := addVertex(t, g, ids[1])
	e := addEdge(t, g, v, u, "test_label")

	viaOut, ok := pgm.First(v.OutEdges())
	require.True(t, ok)
	viaIn, ok := pgm.First(u.InEdges())
	require.True(t, ok)
	require.True(t, e == viaOut, "edge via out-adjacency")
	require.True(t, e == viaIn, "edge via in-adjacency")
	require.Equal(t, e.ID(), viaOut.ID())
	require.Equal(t, viaOut.ID(), viaIn.ID())

	set := map[pgm.Edge]struct{}{e: {}, viaOut: {}, viaIn: {}}
	if env.Features.SupportsEdgeIteration {
		viaAll, ok := pgm.First(g.Edges())
		require.True(t, ok)
		require.Equal(t, e.ID(), viaAll.ID())
		set[viaAll] = struct{}{}
	}
	require.Len(t, set, 1)
}

func addEdges(t T, env *Env) {
	g := env.Graph(t)
	elapsed := stopwatch()
	vs := addVertices(t, g, env.IDs(3))
	addEdge(t, g, vs[0], vs[1], "knows")
	addEdge(t, g, vs[1], vs[2], "pets")
	addEdge(t, g, vs[1], vs[2], "cares_for")
	degrees(t, [][2]int{{1, 0}, {2, 1}, {0, 2}}, vs...)
	env.Perf(g, 6, "elements added and checked", elapsed())
}

func addManyEdges(t T, env *Env) {
	const edgeCount, vertexCount = 1000, 2000
	g := env.Graph(t)

	elapsed := stopwatch()
	for i := 0; i < edgeCount; i++ {
		out := addVertex(t, g, fmt.Sprintf("%d", 2*i))
		in := addVertex(t, g, fmt.Sprintf("%d", 2*i+1))
		addEdge(t, g, out, in, fmt.Sprintf("label-%d", i))
	}
	env.Perf(g, vertexCount+edgeCount, "elements added", elapsed())

	if env.Features.SupportsEdgeIteration {
		elapsed = stopwatch()
		require.Equal(t, edgeCount, pgm.Count(g.Edges()))
		env.Perf(g, edgeCount, "edges counted", elapsed())
	}
	if env.Features.SupportsVertexIteration {
		elapsed = stopwatch()
		require.Equal(t, vertexCount, pgm.Count(g.Vertices()))
		env.Perf(g, vertexCount, "vertices counted", elapsed())

		elapsed = stopwatch()
		for v := range g.Vertices() {
			out, in := pgm.Count(v.OutEdges()), pgm.Count(v.InEdges())
			require.Equal(t, 1, out+in, "vertex %s has exactly one incident edge", v.ID())
		}
		env.Perf(g, vertexCount, "vertices checked", elapsed())
	}
}

func removeManyEdges(t T, env *Env) {
	const edgeCount = 100
	g := env.Graph(t)

	edges := make([]pgm.Edge, 0, edgeCount)
	for i := 0; i < edgeCount; i++ {
		out := addVertex(t, g, fmt.Sprintf("%d", 200000+2*i))
		in := addVertex(t, g, fmt.Sprintf("%d", 200000+2*i+1))
		edges = append(edges, addEdge(t, g, out, in, fmt.Sprintf("a-%d", i)))
	}
	seen := make(map[string]struct{}, edgeCount)
	for _, e := range edges {
		seen[e.ID()] = struct{}{}
	}
	require.Len(t, seen, edgeCount, "edge ids are distinct")

	if env.Features.SupportsVertexIteration {
		elapsed := stopwatch()
		require.Equal(t, 2*edgeCount, pgm.Count(g.Vertices()))
		env.Perf(g, 2*edgeCount, "vertices counted", elapsed())
	}
	if !env.Features.SupportsEdgeIteration {
		for _, e := range edges {
			require.NoError(t, g.RemoveEdge(e))
			require.Equal(t, 0, pgm.Count(e.OutVertex().OutEdges()))
		}
		return
	}

	elapsed := stopwatch()
	require.Equal(t, edgeCount, pgm.Count(g.Edges()))
	env.Perf(g, edgeCount, "edges counted", elapsed())

	elapsed = stopwatch()
	remaining := edgeCount
	for _, e := range edges {
		require.NoError(t, g.RemoveEdge(e))
		remaining--
		require.Equal(t, remaining, pgm.Count(g.Edges()))
		if !env.Features.SupportsVertexIteration {
			continue
		}
		isolated := 0
		for v := range g.Vertices() {
			out, in := pgm.Count(v.OutEdges()), pgm.Count(v.InEdges())
			switch {
			case out > 0:
				require.Equal(t, 1, out)
				require.Zero(t, in)
			case in > 0:
				require.Equal(t, 1, in)
			default:
				isolated++
			}
		}
		require.Equal(t, (edgeCount-remaining)*2, isolated)
	}
	env.Perf(g, edgeCount, "edges removed and graph checked", elapsed())
}

func addingDuplicateEdges(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	addEdge(t, g, vs[0], vs[1], "knows")
	first := addEdge(t, g, vs[1], vs[2], "pets")
	for i := 0; i < 3; i++ {
		again := addEdge(t, g, vs[1], vs[2], "pets")
		if !env.Features.AllowsDuplicateEdges {
			require.Equal(t, first.ID(), again.ID(), "a repeated edge is the existing edge")
		}
	}

	pets, total := 1, 2
	if env.Features.AllowsDuplicateEdges {
		pets, total = 4, 5
	}
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 3, pgm.Count(g.Vertices()))
	}
	if env.Features.SupportsEdgeIteration {
		require.Equal(t, total, pgm.Count(g.Edges()))
	}
	degrees(t, [][2]int{{1, 0}, {pets, 1}, {0, pets}}, vs...)
	require.Equal(t, pets, pgm.Count(vs[1].OutEdges("pets")))
}

func removeEdgesByRemovingVertex(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	addEdge(t, g, vs[0], vs[1], "knows")
	addEdge(t, g, vs[1], vs[2], "pets")
	addEdge(t, g, vs[1], vs[2], "pets")

	pets := 1
	if env.Features.AllowsDuplicateEdges {
		pets = 2
	}
	degrees(t, [][2]int{{1, 0}, {pets, 1}, {0, pets}}, vs...)
	v1, v2, v3 := reload(t, g, vs[0]), reload(t, g, vs[1]), reload(t, g, vs[2])
	degrees(t, [][2]int{{1, 0}, {pets, 1}, {0, pets}}, v1, v2, v3)
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 3, pgm.Count(g.Vertices()))
	}

	require.NoError(t, g.RemoveVertex(v1))
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 2, pgm.Count(g.Vertices()))
	}
	degrees(t, [][2]int{{pets, 0}, {0, pets}}, v2, v3)
	_, err := g.Vertex(v1.ID())
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
}

func removeEdges(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	e1 := addEdge(t, g, vs[0], vs[1], "knows")
	e2 := addEdge(t, g, vs[1], vs[2], "pets")
	e3 := addEdge(t, g, vs[1], vs[2], "cares_for")
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 3, pgm.Count(g.Vertices()))
	}

	steps := []struct {
		edge pgm.Edge
		want [][2]int
	}{
		{e1, [][2]int{{0, 0}, {2, 0}, {0, 2}}},
		{e2, [][2]int{{0, 0}, {1, 0}, {0, 1}}},
		{e3, [][2]int{{0, 0}, {0, 0}, {0, 0}}},
	}
	for _, step := range steps {
		require.NoError(t, g.RemoveEdge(step.edge))
		degrees(t, step.want, vs...)
		degrees(t, step.want, reload(t, g, vs[0]), reload(t, g, vs[1]), reload(t, g, vs[2]))
		_, err := g.Edge(step.edge.ID())
		require.ErrorIs(t, err, pgm.ErrElementNotFound)
	}
	require.ErrorIs(t, g.RemoveEdge(e1), pgm.ErrElementNotFound, "removing twice")
}

func addingSelfLoops(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	for _, v := range vs {
		isLoop(t, addEdge(t, g, v, v, "is_self"))
	}
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 3, pgm.Count(g.Vertices()))
	}
	if env.Features.SupportsEdgeIteration {
		n := 0
		for e := range g.Edges() {
			n++
			isLoop(t, e)
		}
		require.Equal(t, 3, n)
	}
	degrees(t, [][2]int{{1, 1}, {1, 1}, {1, 1}}, vs...)
}

func removeSelfLoops(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	loops := make([]pgm.Edge, len(vs))
	for i, v := range vs {
		loops[i] = addEdge(t, g, v, v, "is_self")
	}
	checkEdges := func(want int) {
		if !env.Features.SupportsEdgeIteration {
			return
		}
		require.Equal(t, want, pgm.Count(g.Edges()))
		for e := range g.Edges() {
			isLoop(t, e)
		}
	}
	checkEdges(3)

	require.NoError(t, g.RemoveVertex(vs[0]))
	checkEdges(2)
	_, err := g.Edge(loops[0].ID())
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "the loop goes with its vertex")

	degrees(t, [][2]int{{1, 1}}, vs[1])
	require.NoError(t, g.RemoveEdge(loops[1]))
	degrees(t, [][2]int{{0, 0}}, vs[1])
	checkEdges(1)
}

// selfLoopPolicy exercises the self-loop and duplicate flags together:
// the two are independent predicates, so two identical self-loops yield
// an error (no loops), one edge (loops only) or two edges (loops and duplicates).
func selfLoopPolicy(t T, env *Env) {
	g := env.Graph(t)
	v := addVertex(t, g, env.IDs(1)[0])

	var added []pgm.Edge
	for i := 0; i < 2; i++ {
		e, err := g.AddEdge("", v, v, "is_self")
		if !env.Features.AllowsSelfLoops {
			require.ErrorIs(t, err, pgm.ErrUnsupportedTopology)
			continue
		}
		require.NoError(t, err)
		isLoop(t, e)
		added = append(added, e)
	}

	want := 0
	switch {
	case env.Features.AllowsSelfLoops && env.Features.AllowsDuplicateEdges:
		want = 2
		require.NotEqual(t, added[0].ID(), added[1].ID())
	case env.Features.AllowsSelfLoops:
		want = 1
		require.Equal(t, added[0].ID(), added[1].ID())
	}
	degrees(t, [][2]int{{want, want}}, v)
	if env.Features.SupportsEdgeIteration {
		require.Equal(t, want, pgm.Count(g.Edges()))
	}

	require.NoError(t, g.RemoveVertex(v))
	if env.Features.SupportsEdgeIteration {
		require.Zero(t, pgm.Count(g.Edges()))
	}
}

func edgeIterator(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(3))
	e1 := addEdge(t, g, vs[0], vs[1], "test")
	e2 := addEdge(t, g, vs[1], vs[2], "test")
	e3 := addEdge(t, g, vs[2], vs[0], "test")
	if env.Features.SupportsVertexIteration {
		require.Equal(t, 3, pgm.Count(g.Vertices()))
	}

	want := map[string][2]string{
		e1.ID(): {vs[0].ID(), vs[1].ID()},
		e2.ID(): {vs[1].ID(), vs[2].ID()},
		e3.ID(): {vs[2].ID(), vs[0].ID()},
	}
	seen := make(map[string]struct{})
	for e := range g.Edges() {
		seen[e.ID()] = struct{}{}
		require.Equal(t, "test", e.Label())
		ends, ok := want[e.ID()]
		require.True(t, ok, "unexpected edge %s", e.ID())
		require.Equal(t, ends[0], e.OutVertex().ID())
		require.Equal(t, ends[1], e.InVertex().ID())
	}
	require.Len(t, seen, 3)

	// Stopping early must be honored.
	n := 0
	for range g.Edges() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func edgeEndpointsMustBelong(t T, env *Env) {
	g := env.Graph(t)
	other := env.Graph(t)
	v := addVertex(t, g, "local")
	foreign := addVertex(t, other, "foreign")

	_, err := g.AddEdge("", v, foreign, "knows")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	_, err = g.AddEdge("", foreign, v, "knows")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	_, err = g.AddEdge("", nil, v, "knows")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)

	gone := addVertex(t, g, "gone")
	require.NoError(t, g.RemoveVertex(gone))
	_, err = g.AddEdge("", v, gone, "knows")
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "removed endpoint")
	degrees(t, [][2]int{{0, 0}}, v)
}

func edgeLookup(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(2))

	e, err := g.AddEdge("edge-1", vs[0], vs[1], "knows")
	require.NoError(t, err)
	if env.Features.IgnoresSuppliedIDs {
		require.NotEmpty(t, e.ID())
	} else {
		require.Equal(t, "edge-1", e.ID())
		other := addVertex(t, g, "other")
		_, err = g.AddEdge("edge-1", vs[1], other, "knows")
		require.ErrorIs(t, err, pgm.ErrDuplicateID)
	}

	got, err := g.Edge(e.ID())
	require.NoError(t, err)
	require.True(t, got == e)
	require.Equal(t, "knows", got.Label())
	require.Equal(t, pgm.EdgeKind, got.Kind())

	_, err = g.Edge("no-such-edge")
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
}

func edgeProperties(t T, env *Env) {
	g := env.Graph(t)
	vs := addVertices(t, g, env.IDs(2))
	e := addEdge(t, g, vs[0], vs[1], "knows")

	require.NoError(t, e.SetProperty("weight", 0.5))
	w, ok := e.Property("weight")
	require.True(t, ok)
	require.Equal(t, 0.5, w)
	require.Contains(t, e.PropertyKeys(), "weight")

	require.ErrorIs(t, e.SetProperty(pgm.KeyLabel, "x"), pgm.ErrInvalidPropertyKey)
	require.ErrorIs(t, e.SetProperty(pgm.KeyID, "x"), pgm.ErrInvalidPropertyKey)
	require.ErrorIs(t, e.SetProperty("", "x"), pgm.ErrInvalidPropertyKey)
	require.Equal(t, "knows", e.Label())

	old, err := e.RemoveProperty("weight")
	require.NoError(t, err)
	require.Equal(t, 0.5, old)
	_, ok = e.Property("weight")
	require.False(t, ok)
}
