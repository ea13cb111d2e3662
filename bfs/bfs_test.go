package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/bfs"
	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
	"github.com/seyyedshah/blueprints/readonly"
)

// social is a small directed fixture:
//
//	F -knows-> A -knows-> B -knows-> D -knows-> E
//	           A -knows-> C -likes-> D
var social = []link{
	{"A", "knows", "B"}, // e01
	{"A", "knows", "C"}, // e02
	{"B", "knows", "D"}, // e03
	{"C", "likes", "D"}, // e04
	{"D", "knows", "E"}, // e05
	{"F", "knows", "A"}, // e06
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, pgm.ErrElementNotFound, "backend error stays matchable")

	ensureVertex(t, g, "A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(g, "A", bfs.WithDirection(bfs.Direction(7)))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	ensureVertex(t, g, "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0}, res.Depth)
	assert.Empty(t, res.Parent)
	assert.Empty(t, res.Via)
}

// TestBFS_Directions checks the visit order for each Direction.
func TestBFS_Directions(t *testing.T) {
	g := buildGraph(t, social)

	cases := []struct {
		name string
		dir  bfs.Direction
		want []string
	}{
		{"out", bfs.Out, []string{"A", "B", "C", "D", "E"}},
		{"in", bfs.In, []string{"A", "F"}},
		{"both", bfs.Both, []string{"A", "B", "C", "F", "D", "E"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.BFS(g, "A", bfs.WithDirection(tc.dir))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

// TestBFS_DepthsParentsAndVia checks the BFS tree on the social fixture.
func TestBFS_DepthsParentsAndVia(t *testing.T) {
	g := buildGraph(t, social)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B", "E": "D"}, res.Parent)
	assert.Equal(t, map[string]string{"B": "e01", "C": "e02", "D": "e03", "E": "e05"}, res.Via)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	edges, err := res.EdgePathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"e01", "e03", "e05"}, edges)

	edges, err = res.EdgePathTo("A")
	require.NoError(t, err)
	assert.Empty(t, edges)

	_, err = res.PathTo("F")
	require.Error(t, err, "F is only reachable against edge direction")
}

// TestBFS_Labels restricts expansion to labelled edges.
func TestBFS_Labels(t *testing.T) {
	g := buildGraph(t, social)

	res, err := bfs.BFS(g, "A", bfs.WithLabels("likes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)

	res, err = bfs.BFS(g, "C", bfs.WithLabels("likes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, res.Order)

	res, err = bfs.BFS(g, "E", bfs.WithDirection(bfs.In), bfs.WithLabels("knows"))
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "D", "B", "A", "F"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithLabels("knows", "likes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
}

// TestBFS_MaxDepth verifies the inclusive depth limit and its "no limit" zero.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, chain(5))

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	res, err = bfs.BFS(g, "v0", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)

	res, err = bfs.BFS(g, "v0", bfs.WithMaxDepth(100))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}

// TestBFS_FilterEdge reroutes the tree around a filtered edge.
func TestBFS_FilterEdge(t *testing.T) {
	g := buildGraph(t, social)

	skip := func(_ pgm.Vertex, e pgm.Edge) bool { return e.ID() != "e03" }
	res, err := bfs.BFS(g, "A", bfs.WithFilterEdge(skip))
	require.NoError(t, err)
	assert.Equal(t, "C", res.Parent["D"])
	assert.Equal(t, "e04", res.Via["D"])

	heavy := func(_ pgm.Vertex, e pgm.Edge) bool {
		w, ok := e.Property("weight")
		return !ok || w.(int) < 10
	}
	e, err := g.Edge("e01")
	require.NoError(t, err)
	require.NoError(t, e.SetProperty("weight", 12))
	res, err = bfs.BFS(g, "A", bfs.WithFilterEdge(heavy))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)
}

// TestBFS_SelfLoopsAndParallelEdges visits each vertex once.
func TestBFS_SelfLoopsAndParallelEdges(t *testing.T) {
	g := buildGraph(t, []link{
		{"A", "self", "A"},
		{"A", "knows", "B"},
		{"A", "knows", "B"},
		{"B", "knows", "A"},
	}, core.WithLoops(), core.WithMultiEdges())

	for _, dir := range []bfs.Direction{bfs.Out, bfs.In, bfs.Both} {
		res, err := bfs.BFS(g, "A", bfs.WithDirection(dir))
		require.NoError(t, err, dir.String())
		assert.Equal(t, []string{"A", "B"}, res.Order, dir.String())
	}
}

// TestBFS_Hooks records hook invocations in order.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, chain(3))

	var events []string
	res, err := bfs.BFS(g, "v0",
		bfs.WithOnEnqueue(func(id string, _ int) { events = append(events, "enq:"+id) }),
		bfs.WithOnDequeue(func(id string, _ int) { events = append(events, "deq:"+id) }),
		bfs.WithOnVisit(func(v pgm.Vertex, _ int) error {
			events = append(events, "vis:"+v.ID())
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
	assert.Equal(t, []string{
		"enq:v0", "deq:v0", "vis:v0",
		"enq:v1", "deq:v1", "vis:v1",
		"enq:v2", "deq:v2", "vis:v2",
	}, events)
}

// TestBFS_OnVisitError aborts with the wrapped hook error.
func TestBFS_OnVisitError(t *testing.T) {
	g := buildGraph(t, social)
	stop := errors.New("stop here")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(v pgm.Vertex, _ int) error {
		if v.ID() == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order, "partial result is returned")
}

// TestBFS_Cancellation stops the traversal once the context is done.
func TestBFS_Cancellation(t *testing.T) {
	g := buildGraph(t, chain(6))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := bfs.BFS(g, "v0",
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(_ pgm.Vertex, depth int) error {
			if depth == 2 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	_, err = bfs.BFS(g, "v0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled, "already-cancelled context")
}

// TestBFS_ReadOnlyViewTraversesLikeBase compares raw and read-only traversals.
func TestBFS_ReadOnlyViewTraversesLikeBase(t *testing.T) {
	g := buildGraph(t, social)
	view := readonly.NewGraph(g)

	for _, dir := range []bfs.Direction{bfs.Out, bfs.In, bfs.Both} {
		want, err := bfs.BFS(g, "A", bfs.WithDirection(dir))
		require.NoError(t, err)

		var wrapped []bool
		got, err := bfs.BFS(view, "A",
			bfs.WithDirection(dir),
			bfs.WithOnVisit(func(v pgm.Vertex, _ int) error {
				wrapped = append(wrapped, readonly.IsReadOnly(v))
				return v.SetProperty("visited", true)
			}),
		)
		require.ErrorIs(t, err, readonly.ErrReadOnly, "view vertices reject writes")
		require.Equal(t, []bool{true}, wrapped)

		got, err = bfs.BFS(view, "A", bfs.WithDirection(dir))
		require.NoError(t, err)
		assert.Equal(t, want, got, dir.String())
	}

	a, err := g.Vertex("A")
	require.NoError(t, err)
	_, ok := a.Property("visited")
	assert.False(t, ok, "base is untouched")
}
