// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle, cascading deletion and edge policy flags.
//   - Provide contract anchors for ordering guarantees (Vertices/Edges sorted by ID).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// TestGraph_AddVertexIDs verifies supplied, generated and duplicate ids.
func TestGraph_AddVertexIDs(t *testing.T) {
	g := core.NewGraph()

	a := mustVertex(t, g, VertexA)
	require.Equal(t, VertexA, a.ID())
	require.Equal(t, pgm.VertexKind, a.Kind())

	_, err := g.AddVertex(VertexA)
	require.ErrorIs(t, err, pgm.ErrDuplicateID, "AddVertex(A) twice")

	gen := mustVertex(t, g, "")
	require.Equal(t, "v1", gen.ID(), "generated ids follow the v<n> sequence")

	got, err := g.Vertex(VertexA)
	require.NoError(t, err)
	require.Equal(t, a, got, "point lookup returns the same vertex")

	_, err = g.Vertex(VertexX)
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
}

// TestGraph_IgnoreSuppliedIDs verifies that supplied ids are replaced and never collide.
func TestGraph_IgnoreSuppliedIDs(t *testing.T) {
	g := core.NewGraph(core.WithIgnoreSuppliedIDs())
	require.True(t, g.Features().IgnoresSuppliedIDs)

	a := mustVertex(t, g, VertexA)
	b := mustVertex(t, g, VertexA)
	require.NotEqual(t, VertexA, a.ID())
	require.NotEqual(t, a.ID(), b.ID(), "two vertices never share an id")

	e, err := g.AddEdge("myEdge", a, b, LabelKnows)
	require.NoError(t, err)
	require.Equal(t, "e1", e.ID())
}

// TestGraph_GeneratedIDsSkipTaken verifies the generator skips ids supplied earlier.
func TestGraph_GeneratedIDsSkipTaken(t *testing.T) {
	g := core.NewGraph()
	mustVertex(t, g, "v1")
	v := mustVertex(t, g, "")
	require.Equal(t, "v2", v.ID())
}

// TestGraph_AddEdgeScenario verifies the knows/pets/cares_for degree scenario and cascade.
func TestGraph_AddEdgeScenario(t *testing.T) {
	g := NewGraphFull()
	v1 := mustVertex(t, g, "1")
	v2 := mustVertex(t, g, "2")
	v3 := mustVertex(t, g, "3")
	mustEdge(t, g, v1, v2, LabelKnows)
	mustEdge(t, g, v2, v3, LabelPets)
	mustEdge(t, g, v2, v3, LabelCaresFor)

	assert.Equal(t, 1, outDeg(v1))
	assert.Equal(t, 2, outDeg(v2))
	assert.Equal(t, 0, outDeg(v3))
	assert.Equal(t, 0, inDeg(v1))
	assert.Equal(t, 1, inDeg(v2))
	assert.Equal(t, 2, inDeg(v3))

	require.NoError(t, g.RemoveVertex(v2))
	assert.Equal(t, 0, outDeg(v1))
	assert.Equal(t, 0, inDeg(v3))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

// TestGraph_AddEdgeErrors verifies endpoint ownership and loop policy.
func TestGraph_AddEdgeErrors(t *testing.T) {
	g := core.NewGraph()
	other := core.NewGraph()
	a := mustVertex(t, g, VertexA)
	foreign := mustVertex(t, other, VertexB)

	_, err := g.AddEdge("", a, foreign, LabelKnows)
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "foreign in-vertex")

	_, err = g.AddEdge("", nil, a, LabelKnows)
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "nil out-vertex")

	_, err = g.AddEdge("", a, a, LabelSelf)
	require.ErrorIs(t, err, pgm.ErrUnsupportedTopology, "self-loop without WithLoops")
	require.Equal(t, 0, g.EdgeCount())

	b := mustVertex(t, g, VertexB)
	_, err = g.AddEdge("e", a, b, LabelKnows)
	require.NoError(t, err)
	_, err = g.AddEdge("e", b, a, LabelKnows)
	require.ErrorIs(t, err, pgm.ErrDuplicateID)
}

// TestGraph_DuplicateEdgePolicy verifies both settings of the multi-edge flag.
func TestGraph_DuplicateEdgePolicy(t *testing.T) {
	for _, tc := range []struct {
		name      string
		opts      []core.GraphOption
		wantEdges int
	}{
		{name: "no duplicates", wantEdges: 1},
		{name: "duplicates", opts: []core.GraphOption{core.WithMultiEdges()}, wantEdges: 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			v2 := mustVertex(t, g, "2")
			v3 := mustVertex(t, g, "3")
			first := mustEdge(t, g, v2, v3, LabelPets)
			for i := 0; i < 3; i++ {
				e := mustEdge(t, g, v2, v3, LabelPets)
				if tc.wantEdges == 1 {
					require.Equal(t, first, e, "repeated AddEdge returns the existing edge")
				}
			}
			require.Equal(t, tc.wantEdges, g.EdgeCount())
			require.Equal(t, tc.wantEdges, outDeg(v2))
			require.Equal(t, tc.wantEdges, inDeg(v3))
		})
	}
}

// TestGraph_SelfLoopAndDuplicateCombinations resolves the flag interaction explicitly:
// loops and multi-edges are orthogonal predicates.
func TestGraph_SelfLoopAndDuplicateCombinations(t *testing.T) {
	for _, tc := range []struct {
		name      string
		opts      []core.GraphOption
		loopErr   error
		wantLoops int
	}{
		{name: "neither", loopErr: pgm.ErrUnsupportedTopology, wantLoops: 0},
		{name: "multi only", opts: []core.GraphOption{core.WithMultiEdges()}, loopErr: pgm.ErrUnsupportedTopology, wantLoops: 0},
		{name: "loops only", opts: []core.GraphOption{core.WithLoops()}, wantLoops: 1},
		{name: "both", opts: []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}, wantLoops: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			v := mustVertex(t, g, VertexX)
			for i := 0; i < 2; i++ {
				e, err := g.AddEdge("", v, v, LabelSelf)
				if tc.loopErr != nil {
					require.ErrorIs(t, err, tc.loopErr)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, e.OutVertex().ID(), e.InVertex().ID())
			}
			require.Equal(t, tc.wantLoops, g.EdgeCount())
			require.Equal(t, tc.wantLoops, g.Stats().SelfLoopCount)
			require.Equal(t, tc.wantLoops, outDeg(v))
			require.Equal(t, tc.wantLoops, inDeg(v))

			require.NoError(t, g.RemoveVertex(v))
			require.Equal(t, 0, g.EdgeCount())
		})
	}
}

// TestGraph_RemoveEdge verifies RemoveEdge touches only the removed edge.
func TestGraph_RemoveEdge(t *testing.T) {
	g := NewGraphFull()
	a := mustVertex(t, g, VertexA)
	b := mustVertex(t, g, VertexB)
	c := mustVertex(t, g, VertexC)
	e1 := mustEdge(t, g, a, b, LabelKnows)
	mustEdge(t, g, b, c, LabelPets)

	require.NoError(t, g.RemoveEdge(e1))
	require.Equal(t, 0, outDeg(a))
	require.Equal(t, 0, inDeg(b))
	require.Equal(t, 1, outDeg(b))
	require.Equal(t, 1, inDeg(c))
	require.True(t, g.HasVertex(VertexA), "endpoints survive RemoveEdge")

	require.ErrorIs(t, g.RemoveEdge(e1), pgm.ErrElementNotFound, "second removal")
	_, err := g.Edge(e1.ID())
	require.ErrorIs(t, err, pgm.ErrElementNotFound)
	require.ErrorIs(t, e1.SetProperty(KeyName, NameMarko), pgm.ErrElementNotFound, "mutating a removed edge")
}

// TestGraph_LabelFilter verifies adjacency filtering by label.
func TestGraph_LabelFilter(t *testing.T) {
	g := NewGraphFull()
	a := mustVertex(t, g, VertexA)
	b := mustVertex(t, g, VertexB)
	mustEdge(t, g, a, b, LabelKnows)
	mustEdge(t, g, a, b, LabelPets)
	mustEdge(t, g, a, b, LabelPets)

	require.Equal(t, 3, outDeg(a))
	require.Equal(t, 1, outDeg(a, LabelKnows))
	require.Equal(t, 2, inDeg(b, LabelPets))
	require.Equal(t, 3, outDeg(a, LabelKnows, LabelPets, LabelPets), "repeated labels count once")
	require.Equal(t, 0, outDeg(a, LabelCaresFor))
}

// TestGraph_EdgesAreSorted anchors deterministic enumeration order.
func TestGraph_EdgesAreSorted(t *testing.T) {
	g := NewGraphFull()
	for _, id := range []string{VertexC, VertexA, VertexB} {
		mustVertex(t, g, id)
	}
	a, _ := g.Vertex(VertexA)
	b, _ := g.Vertex(VertexB)
	for _, id := range []string{"e3", "e1", "e2"} {
		_, err := g.AddEdge(id, a, b, LabelKnows)
		require.NoError(t, err)
	}

	require.Equal(t, []string{VertexA, VertexB, VertexC}, idsOf(g.Vertices()))
	require.Equal(t, []string{"e1", "e2", "e3"}, idsOf(g.Edges()))
	require.Equal(t, []string{"e1", "e2", "e3"}, idsOf(a.OutEdges()))
}

// TestGraph_MutateWhileIterating verifies sequences do not hold locks while yielding.
func TestGraph_MutateWhileIterating(t *testing.T) {
	g := NewGraphFull()
	for _, id := range []string{VertexA, VertexB, VertexC} {
		mustVertex(t, g, id)
	}
	for v := range g.Vertices() {
		require.NoError(t, g.RemoveVertex(v))
	}
	require.Equal(t, 0, g.VertexCount())
}

// TestGraph_Properties verifies property get/set/remove and key validation.
func TestGraph_Properties(t *testing.T) {
	g := NewGraphFull()
	a := mustVertex(t, g, VertexA)
	b := mustVertex(t, g, VertexB)
	e := mustEdge(t, g, a, b, LabelKnows)

	require.NoError(t, a.SetProperty(KeyName, NameMarko))
	require.NoError(t, a.SetProperty(KeyAge, 29))
	v, ok := a.Property(KeyName)
	require.True(t, ok)
	require.Equal(t, NameMarko, v)
	require.Equal(t, []string{KeyAge, KeyName}, a.PropertyKeys())

	old, err := a.RemoveProperty(KeyAge)
	require.NoError(t, err)
	require.Equal(t, 29, old)
	old, err = a.RemoveProperty(KeyAge)
	require.NoError(t, err)
	require.Nil(t, old, "removing an absent key is a no-op")

	require.ErrorIs(t, a.SetProperty("", 1), pgm.ErrInvalidPropertyKey)
	require.ErrorIs(t, a.SetProperty(pgm.KeyID, 1), pgm.ErrInvalidPropertyKey)
	require.NoError(t, a.SetProperty(pgm.KeyLabel, "ok on vertices"))
	require.ErrorIs(t, e.SetProperty(pgm.KeyLabel, "x"), pgm.ErrInvalidPropertyKey)
	require.Equal(t, LabelKnows, e.Label())
}

// TestGraph_StatsAndClear verifies Stats snapshots and that Clear preserves flags.
func TestGraph_StatsAndClear(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithDefaultIndices())
	a := mustVertex(t, g, VertexA)
	mustEdge(t, g, a, a, LabelSelf)

	st := g.Stats()
	require.Equal(t, core.GraphStats{
		AllowsLoops:   true,
		VertexCount:   1,
		EdgeCount:     1,
		SelfLoopCount: 1,
		IndexCount:    2,
		AutoIndexes:   2,
	}, *st)

	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.True(t, g.Looped(), "Clear preserves flags")
	require.False(t, g.Multigraph())
	require.Equal(t, 2, g.Stats().IndexCount, "default indices are recreated")
	require.ErrorIs(t, a.SetProperty(KeyName, NameMarko), pgm.ErrElementNotFound)
	require.Equal(t, "v1", mustVertex(t, g, "").ID(), "id counters restart")
}
