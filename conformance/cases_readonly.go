// File: cases_readonly.go
// Role: Read-only suite: a view over the backend under test must match it on
// every read and reject every write without touching it.

package conformance

import (
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
	"github.com/seyyedshah/blueprints/readonly"
)

func readOnlyCases() []Case {
	return []Case{
		{Suite: SuiteReadOnly, Name: "readonly_reads_match_base", Run: readOnlyReadsMatchBase},
		{Suite: SuiteReadOnly, Name: "readonly_is_transitive", Run: readOnlyIsTransitive},
		{Suite: SuiteReadOnly, Name: "readonly_rejects_graph_writes", Run: readOnlyRejectsGraphWrites},
		{Suite: SuiteReadOnly, Name: "readonly_rejects_element_writes", Run: readOnlyRejectsElementWrites},
		{Suite: SuiteReadOnly, Name: "readonly_rejects_index_writes", Requires: []Capability{Indices}, Run: readOnlyRejectsIndexWrites},
		{Suite: SuiteReadOnly, Name: "readonly_index_type_dispatch", Requires: []Capability{Indices}, Run: readOnlyIndexTypeDispatch},
		{Suite: SuiteReadOnly, Name: "readonly_indices_count_for_count", Requires: []Capability{Indices}, Run: readOnlyIndicesCountForCount},
		{Suite: SuiteReadOnly, Name: "readonly_is_never_stale", Run: readOnlyIsNeverStale},
	}
}

// fixture builds v1 -knows-> v2, v2 -pets-> v3, v2 -cares_for-> v3 with properties.
func fixture(t T, env *Env, g pgm.Graph) ([]pgm.Vertex, []pgm.Edge) {
	t.Helper()
	vs := addVertices(t, g, env.IDs(3))
	for i, name := range []string{"marko", "vadas", "lop"} {
		require.NoError(t, vs[i].SetProperty("name", name))
	}
	es := []pgm.Edge{
		addEdge(t, g, vs[0], vs[1], "knows"),
		addEdge(t, g, vs[1], vs[2], "pets"),
		addEdge(t, g, vs[1], vs[2], "cares_for"),
	}
	require.NoError(t, es[0].SetProperty("weight", 0.5))

	return vs, es
}

func sameElement(t T, want, got pgm.Element) {
	t.Helper()
	require.Equal(t, want.ID(), got.ID())
	require.Equal(t, want.Kind(), got.Kind())
	require.ElementsMatch(t, want.PropertyKeys(), got.PropertyKeys(), "keys of %s", want.ID())
	for _, k := range want.PropertyKeys() {
		wv, _ := want.Property(k)
		gv, ok := got.Property(k)
		require.True(t, ok)
		require.Equal(t, wv, gv, "%s.%s", want.ID(), k)
	}
}

func sameVertex(t T, want, got pgm.Vertex) {
	t.Helper()
	sameElement(t, want, got)
	require.ElementsMatch(t, collectIDs(want.OutEdges()), collectIDs(got.OutEdges()))
	require.ElementsMatch(t, collectIDs(want.InEdges()), collectIDs(got.InEdges()))
	for e := range got.OutEdges() {
		require.Equal(t, got.ID(), e.OutVertex().ID())
	}
}

func readOnlyReadsMatchBase(t T, env *Env) {
	g := env.Graph(t)
	vs, es := fixture(t, env, g)
	ro := readonly.NewGraph(g)
	require.Equal(t, g.Features(), ro.Features())

	for _, v := range vs {
		got, err := ro.Vertex(v.ID())
		require.NoError(t, err)
		sameVertex(t, v, got)
	}
	for _, e := range es {
		got, err := ro.Edge(e.ID())
		require.NoError(t, err)
		sameElement(t, e, got)
		require.Equal(t, e.Label(), got.Label())
		sameVertex(t, e.OutVertex(), got.OutVertex())
		sameVertex(t, e.InVertex(), got.InVertex())
	}
	if env.Features.SupportsVertexIteration {
		require.ElementsMatch(t, collectIDs(g.Vertices()), collectIDs(ro.Vertices()))
	}
	if env.Features.SupportsEdgeIteration {
		require.ElementsMatch(t, collectIDs(g.Edges()), collectIDs(ro.Edges()))
	}

	_, err := ro.Vertex("no-such-vertex")
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "backend errors pass through")
}

func readOnlyIsTransitive(t T, env *Env) {
	g := env.Graph(t)
	vs, _ := fixture(t, env, g)
	ro := readonly.NewGraph(g)
	require.True(t, readonly.IsReadOnly(ro))

	v, err := ro.Vertex(vs[1].ID())
	require.NoError(t, err)
	require.True(t, readonly.IsReadOnly(v))
	for e := range v.OutEdges() {
		require.True(t, readonly.IsReadOnly(e))
		require.True(t, readonly.IsReadOnly(e.InVertex()))
		require.True(t, readonly.IsReadOnly(e.OutVertex()))
	}
	for e := range v.InEdges() {
		require.True(t, readonly.IsReadOnly(e))
	}
	if env.Features.SupportsVertexIteration {
		for v := range ro.Vertices() {
			require.True(t, readonly.IsReadOnly(v))
		}
	}
	if env.Features.SupportsEdgeIteration {
		for e := range ro.Edges() {
			require.True(t, readonly.IsReadOnly(e))
		}
	}

	again, err := ro.Vertex(vs[1].ID())
	require.NoError(t, err)
	require.True(t, v == again, "views of one element compare equal")
}

func readOnlyRejectsGraphWrites(t T, env *Env) {
	g := env.Graph(t)
	vs, es := fixture(t, env, g)
	ro := readonly.NewGraph(g)
	rv, err := ro.Vertex(vs[0].ID())
	require.NoError(t, err)
	re, err := ro.Edge(es[0].ID())
	require.NoError(t, err)

	writes := map[string]func() error{
		"AddVertex":    func() error { _, err := ro.AddVertex("new"); return err },
		"AddEdge":      func() error { _, err := ro.AddEdge("", rv, rv, "x"); return err },
		"AddEdge(raw)": func() error { _, err := ro.AddEdge("", vs[0], vs[1], "x"); return err },
		"RemoveVertex": func() error { return ro.RemoveVertex(rv) },
		"RemoveEdge":   func() error { return ro.RemoveEdge(re) },
	}
	if ig, ok := ro.(pgm.IndexableGraph); ok {
		writes["CreateManualIndex"] = func() error { _, err := ig.CreateManualIndex("x", pgm.VertexKind); return err }
		writes["CreateAutomaticIndex"] = func() error { _, err := ig.CreateAutomaticIndex("x", pgm.VertexKind, nil); return err }
		writes["DropIndex"] = func() error { return ig.DropIndex("x") }
	}

	before := takeCensus(g, vs, es)
	for name, write := range writes {
		err := write()
		require.ErrorIs(t, err, readonly.ErrReadOnly, name)
		require.EqualError(t, err, readonly.ErrReadOnly.Error())
		require.Equal(t, before, takeCensus(g, vs, es), "%s changed the base", name)
	}
	if env.Features.SupportsEdgeIteration {
		require.Equal(t, len(es), pgm.Count(g.Edges()))
	}
}

func readOnlyRejectsElementWrites(t T, env *Env) {
	g := env.Graph(t)
	vs, es := fixture(t, env, g)
	ro := readonly.NewGraph(g)
	rv, err := ro.Vertex(vs[0].ID())
	require.NoError(t, err)
	re, ok := pgm.First(rv.OutEdges())
	require.True(t, ok)

	require.ErrorIs(t, rv.SetProperty("name", "peter"), readonly.ErrReadOnly)
	_, err = rv.RemoveProperty("name")
	require.ErrorIs(t, err, readonly.ErrReadOnly)
	require.ErrorIs(t, re.SetProperty("weight", 1.0), readonly.ErrReadOnly)
	_, err = re.RemoveProperty("weight")
	require.ErrorIs(t, err, readonly.ErrReadOnly)
	require.ErrorIs(t, re.InVertex().SetProperty("name", "x"), readonly.ErrReadOnly)

	name, _ := vs[0].Property("name")
	require.Equal(t, "marko", name)
	weight, _ := es[0].Property("weight")
	require.Equal(t, 0.5, weight)
	name, _ = vs[1].Property("name")
	require.Equal(t, "vadas", name)
}

func readOnlyRejectsIndexWrites(t T, env *Env) {
	g := env.IndexableGraph(t)
	manual, err := pgm.CreateManualIndex[pgm.Vertex](g, "tags")
	require.NoError(t, err)
	_, err = pgm.CreateAutomaticIndex[pgm.Vertex](g, "by-name", []string{"name"})
	require.NoError(t, err)
	vs, _ := fixture(t, env, g)
	require.NoError(t, manual.Put("tag", "x", vs[0]))

	ro := readonly.NewIndexableGraph(g)
	rv, err := ro.Vertex(vs[1].ID())
	require.NoError(t, err)
	for _, name := range []string{"tags", "by-name"} {
		ix, err := pgm.GetIndex[pgm.Vertex](ro, name)
		require.NoError(t, err)
		require.ErrorIs(t, ix.Put("tag", "x", rv), readonly.ErrReadOnly, name)
		require.ErrorIs(t, ix.Remove("tag", "x", rv), readonly.ErrReadOnly, name)
	}
	require.Equal(t, 1, manual.Count("tag", "x"))
	require.ElementsMatch(t, []string{vs[0].ID()}, collectIDs(manual.Get("tag", "x")))
}

func readOnlyIndexTypeDispatch(t T, env *Env) {
	g := env.IndexableGraph(t)
	_, err := g.CreateManualIndex("tags", pgm.VertexKind)
	require.NoError(t, err)
	_, err = g.CreateAutomaticIndex("by-name", pgm.VertexKind, []string{"name"})
	require.NoError(t, err)
	_, err = g.CreateAutomaticIndex("edge-props", pgm.EdgeKind, nil)
	require.NoError(t, err)
	vs, _ := fixture(t, env, g)

	ro := readonly.NewIndexableGraph(g)
	for base := range g.Indices() {
		view, err := ro.Index(base.Name(), base.Kind())
		require.NoError(t, err)
		require.True(t, readonly.IsReadOnly(view))
		require.Equal(t, base.Type(), view.Type(), base.Name())
		require.Equal(t, base.Kind(), view.Kind(), base.Name())

		var isAuto bool
		switch base.Kind() {
		case pgm.VertexKind:
			_, isAuto = view.(pgm.AutomaticIndex[pgm.Vertex])
		case pgm.EdgeKind:
			_, isAuto = view.(pgm.AutomaticIndex[pgm.Edge])
		}
		require.Equal(t, base.Type() == pgm.Automatic, isAuto, base.Name())
	}

	auto, err := pgm.AsAutomatic[pgm.Vertex](mustView(t, ro, "by-name", pgm.VertexKind))
	require.NoError(t, err)
	require.Equal(t, []string{"name"}, auto.AutoIndexKeys())

	byName, err := pgm.GetIndex[pgm.Vertex](g, "by-name")
	require.NoError(t, err)
	require.ElementsMatch(t, collectIDs(byName.Get("name", "marko")), collectIDs(auto.Get("name", "marko")))
	require.Equal(t, byName.Count("name", "marko"), auto.Count("name", "marko"))
	for v := range auto.Get("name", "marko") {
		require.True(t, readonly.IsReadOnly(v))
		require.Equal(t, vs[0].ID(), v.ID())
	}
}

func mustView(t T, ro pgm.IndexableGraph, name string, kind pgm.ElementKind) pgm.AnyIndex {
	t.Helper()
	ix, err := ro.Index(name, kind)
	require.NoError(t, err)

	return ix
}

func readOnlyIndicesCountForCount(t T, env *Env) {
	g := env.IndexableGraph(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := g.CreateManualIndex(name, pgm.VertexKind)
		require.NoError(t, err)
	}
	_, err := g.CreateAutomaticIndex("d", pgm.EdgeKind, []string{"weight"})
	require.NoError(t, err)

	collect := func(g pgm.IndexableGraph) map[string]pgm.IndexType {
		out := make(map[string]pgm.IndexType)
		n := 0
		for ix := range g.Indices() {
			out[ix.Name()] = ix.Type()
			n++
		}
		require.Len(t, out, n, "no index is yielded twice")

		return out
	}
	ro := readonly.NewIndexableGraph(g)
	require.Equal(t, collect(g), collect(ro))
	for ix := range ro.Indices() {
		require.True(t, readonly.IsReadOnly(ix), ix.Name())
	}
}

func readOnlyIsNeverStale(t T, env *Env) {
	g := env.Graph(t)
	vs, es := fixture(t, env, g)
	ro := readonly.NewGraph(g)
	rv, err := ro.Vertex(vs[1].ID())
	require.NoError(t, err)

	require.NoError(t, vs[1].SetProperty("name", "josh"))
	name, _ := rv.Property("name")
	require.Equal(t, "josh", name)

	require.NoError(t, g.RemoveEdge(es[1]))
	require.Equal(t, 1, pgm.Count(rv.OutEdges()))

	extra := addVertex(t, g, "extra")
	got, err := ro.Vertex(extra.ID())
	require.NoError(t, err)
	require.Equal(t, extra.ID(), got.ID())
}
