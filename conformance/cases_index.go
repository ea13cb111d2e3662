// File: cases_index.go
// Role: Index suite: catalog, manual entries, automatic maintenance.

package conformance

import (
	"iter"

	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
)

func indexCases() []Case {
	needs := []Capability{Indices}

	return []Case{
		{Suite: SuiteIndex, Name: "manual_index", Requires: needs, Run: manualIndex},
		{Suite: SuiteIndex, Name: "duplicate_index_name", Requires: needs, Run: duplicateIndexName},
		{Suite: SuiteIndex, Name: "index_not_found", Requires: needs, Run: indexNotFound},
		{Suite: SuiteIndex, Name: "drop_index", Requires: needs, Run: dropIndex},
		{Suite: SuiteIndex, Name: "automatic_index_maintenance", Requires: needs, Run: automaticIndexMaintenance},
		{Suite: SuiteIndex, Name: "automatic_index_all_keys", Requires: needs, Run: automaticIndexAllKeys},
		{Suite: SuiteIndex, Name: "automatic_index_rejects_writes", Requires: needs, Run: automaticIndexRejectsWrites},
		{Suite: SuiteIndex, Name: "removed_elements_leave_indices", Requires: needs, Run: removedElementsLeaveIndices},
		{Suite: SuiteIndex, Name: "indices_enumeration", Requires: needs, Run: indicesEnumeration},
	}
}

func manualIndex(t T, env *Env) {
	g := env.IndexableGraph(t)
	ix, err := pgm.CreateManualIndex[pgm.Vertex](g, "people", pgm.NewParameter("opaque", []int{1, 2}))
	require.NoError(t, err)
	require.Equal(t, "people", ix.Name())
	require.Equal(t, pgm.VertexKind, ix.Kind())
	require.Equal(t, pgm.Manual, ix.Type())

	vs := addVertices(t, g, env.IDs(3))
	require.NoError(t, ix.Put("name", "marko", vs[0]))
	require.NoError(t, ix.Put("name", "marko", vs[1]))
	require.NoError(t, ix.Put("name", "peter", vs[2]))
	require.Equal(t, 2, ix.Count("name", "marko"))
	require.ElementsMatch(t, []string{vs[0].ID(), vs[1].ID()}, collectIDs(ix.Get("name", "marko")))

	_, had := vs[0].Property("name")
	require.False(t, had, "manual entries do not touch element properties")

	require.NoError(t, ix.Remove("name", "marko", vs[0]))
	require.ElementsMatch(t, []string{vs[1].ID()}, collectIDs(ix.Get("name", "marko")))
	require.Zero(t, ix.Count("name", "nobody"))

	eix, err := pgm.CreateManualIndex[pgm.Edge](g, "links")
	require.NoError(t, err)
	e := addEdge(t, g, vs[0], vs[1], "knows")
	require.NoError(t, eix.Put("since", 2009, e))
	got, ok := pgm.First(eix.Get("since", 2009))
	require.True(t, ok)
	require.Equal(t, e.ID(), got.ID())
}

func duplicateIndexName(t T, env *Env) {
	g := env.IndexableGraph(t)
	_, err := g.CreateManualIndex("dup", pgm.VertexKind)
	require.NoError(t, err)
	_, err = g.CreateManualIndex("dup", pgm.VertexKind)
	require.ErrorIs(t, err, pgm.ErrDuplicateIndexName)
	_, err = g.CreateAutomaticIndex("dup", pgm.EdgeKind, nil)
	require.ErrorIs(t, err, pgm.ErrDuplicateIndexName, "names are unique across kinds")
}

func indexNotFound(t T, env *Env) {
	g := env.IndexableGraph(t)
	_, err := g.Index("missing", pgm.VertexKind)
	require.ErrorIs(t, err, pgm.ErrIndexNotFound)

	_, err = g.CreateManualIndex("people", pgm.VertexKind)
	require.NoError(t, err)
	_, err = g.Index("people", pgm.EdgeKind)
	require.ErrorIs(t, err, pgm.ErrIndexNotFound, "kind mismatch")
	_, err = pgm.GetIndex[pgm.Edge](g, "people")
	require.ErrorIs(t, err, pgm.ErrIndexNotFound)

	ix, err := g.Index("people", pgm.VertexKind)
	require.NoError(t, err)
	require.Equal(t, pgm.Manual, ix.Type())
}

func dropIndex(t T, env *Env) {
	g := env.IndexableGraph(t)
	ix, err := pgm.CreateManualIndex[pgm.Vertex](g, "people")
	require.NoError(t, err)
	v := addVertex(t, g, env.IDs(1)[0])
	require.NoError(t, ix.Put("name", "marko", v))

	require.NoError(t, g.DropIndex("people"))
	_, err = g.Index("people", pgm.VertexKind)
	require.ErrorIs(t, err, pgm.ErrIndexNotFound)
	require.ErrorIs(t, g.DropIndex("people"), pgm.ErrIndexNotFound)

	again, err := pgm.CreateManualIndex[pgm.Vertex](g, "people")
	require.NoError(t, err, "a dropped name is free again")
	require.Zero(t, again.Count("name", "marko"), "entries do not survive a drop")
}

func automaticIndexMaintenance(t T, env *Env) {
	g := env.IndexableGraph(t)
	ix, err := pgm.CreateAutomaticIndex[pgm.Vertex](g, "by-name", []string{"name"})
	require.NoError(t, err)
	require.Equal(t, pgm.Automatic, ix.Type())
	require.Equal(t, []string{"name"}, ix.AutoIndexKeys())

	vs := addVertices(t, g, env.IDs(2))
	require.NoError(t, vs[0].SetProperty("name", "marko"))
	require.NoError(t, vs[1].SetProperty("name", "marko"))
	require.NoError(t, vs[0].SetProperty("age", 29))
	require.Equal(t, 2, ix.Count("name", "marko"), "visible immediately after the write")
	require.Zero(t, ix.Count("age", 29), "keys outside the auto-key set are ignored")

	require.NoError(t, vs[0].SetProperty("name", "peter"))
	require.ElementsMatch(t, []string{vs[1].ID()}, collectIDs(ix.Get("name", "marko")), "stale entry removed")
	require.ElementsMatch(t, []string{vs[0].ID()}, collectIDs(ix.Get("name", "peter")))

	_, err = vs[1].RemoveProperty("name")
	require.NoError(t, err)
	require.Zero(t, ix.Count("name", "marko"))
}

func automaticIndexAllKeys(t T, env *Env) {
	g := env.IndexableGraph(t)
	ix, err := pgm.CreateAutomaticIndex[pgm.Edge](g, "edge-props", nil)
	require.NoError(t, err)
	require.Empty(t, ix.AutoIndexKeys())

	vs := addVertices(t, g, env.IDs(2))
	e := addEdge(t, g, vs[0], vs[1], "knows")
	require.NoError(t, e.SetProperty("weight", 0.5))
	require.NoError(t, e.SetProperty("since", 2009))
	require.NoError(t, vs[0].SetProperty("weight", 0.5), "vertex writes never reach edge indices")

	require.ElementsMatch(t, []string{e.ID()}, collectIDs(ix.Get("weight", 0.5)))
	require.Equal(t, 1, ix.Count("since", 2009))
}

func automaticIndexRejectsWrites(t T, env *Env) {
	g := env.IndexableGraph(t)
	ix, err := pgm.CreateAutomaticIndex[pgm.Vertex](g, "by-name", []string{"name"})
	require.NoError(t, err)
	v := addVertex(t, g, env.IDs(1)[0])
	require.NoError(t, v.SetProperty("name", "marko"))

	require.ErrorIs(t, ix.Put("name", "peter", v), pgm.ErrAutomaticIndexWrite)
	require.ErrorIs(t, ix.Remove("name", "marko", v), pgm.ErrAutomaticIndexWrite)
	require.Equal(t, 1, ix.Count("name", "marko"))
	require.Zero(t, ix.Count("name", "peter"))
}

func removedElementsLeaveIndices(t T, env *Env) {
	g := env.IndexableGraph(t)
	auto, err := pgm.CreateAutomaticIndex[pgm.Edge](g, "edge-props", nil)
	require.NoError(t, err)
	manual, err := pgm.CreateManualIndex[pgm.Vertex](g, "tags")
	require.NoError(t, err)

	vs := addVertices(t, g, env.IDs(2))
	e := addEdge(t, g, vs[0], vs[1], "knows")
	require.NoError(t, e.SetProperty("weight", 1))
	require.NoError(t, manual.Put("tag", "x", vs[0]))

	require.NoError(t, g.RemoveVertex(vs[0]))
	require.Zero(t, auto.Count("weight", 1), "cascaded edge left the automatic index")
	require.Zero(t, manual.Count("tag", "x"), "removed vertex left the manual index")
}

func indicesEnumeration(t T, env *Env) {
	g := env.IndexableGraph(t)
	base := map[string]pgm.IndexType{}
	for ix := range g.Indices() {
		base[ix.Name()] = ix.Type()
	}

	_, err := g.CreateManualIndex("m-vertex", pgm.VertexKind)
	require.NoError(t, err)
	_, err = g.CreateManualIndex("m-edge", pgm.EdgeKind)
	require.NoError(t, err)
	_, err = g.CreateAutomaticIndex("a-vertex", pgm.VertexKind, []string{"name"})
	require.NoError(t, err)

	got := map[string]pgm.IndexType{}
	for ix := range g.Indices() {
		got[ix.Name()] = ix.Type()
	}
	want := map[string]pgm.IndexType{"m-vertex": pgm.Manual, "m-edge": pgm.Manual, "a-vertex": pgm.Automatic}
	for name, typ := range base {
		want[name] = typ
	}
	require.Equal(t, want, got)
}

func collectIDs[E pgm.Element](seq iter.Seq[E]) []string {
	var ids []string
	for el := range seq {
		ids = append(ids, el.ID())
	}

	return ids
}
