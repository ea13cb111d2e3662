package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/dfs"
	"github.com/seyyedshah/blueprints/pgm"
	"github.com/seyyedshah/blueprints/readonly"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "a")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, pgm.ErrElementNotFound)

	_, err = dfs.DFS(noVertexIteration{g}, "", dfs.WithFullTraversal())
	require.ErrorIs(t, err, dfs.ErrNoVertexIteration)
}

func TestDFS_PostOrderDepthsParents(t *testing.T) {
	g := buildGraph(t, deps, []string{"f"})

	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "e", "a"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "d": 2, "c": 1, "e": 1}, res.Depth)
	assert.Equal(t, map[string]string{"b": "a", "d": "b", "c": "a", "e": "a"}, res.Parent)
	assert.False(t, res.Visited["f"])
}

func TestDFS_Labels(t *testing.T) {
	g := buildGraph(t, deps, nil)

	res, err := dfs.DFS(g, "a", dfs.WithLabels("dep"))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "a"}, res.Order)

	res, err = dfs.DFS(g, "a", dfs.WithLabels("opt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "a"}, res.Order)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildGraph(t, deps, []string{"f"})

	res, err := dfs.DFS(g, "ignored", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "e", "a", "f"}, res.Order)
	assert.Equal(t, 0, res.Depth["f"])
	_, hasParent := res.Parent["f"]
	assert.False(t, hasParent, "tree roots have no parent")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, deps, nil)

	res, err := dfs.DFS(g, "a", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "e", "a"}, res.Order)
	assert.False(t, res.Visited["d"])

	res, err = dfs.DFS(g, "a", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Order)
}

func TestDFS_FilterEdge(t *testing.T) {
	g := buildGraph(t, deps, nil)

	res, err := dfs.DFS(g, "a", dfs.WithFilterEdge(func(e pgm.Edge) bool { return e.ID() != "e01" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "e", "a"}, res.Order)
	assert.Equal(t, 1, res.SkippedEdges)
	assert.Equal(t, "c", res.Parent["d"])
}

func TestDFS_Hooks(t *testing.T) {
	g := buildGraph(t, []link{{"a", "x", "b"}}, nil)

	var events []string
	_, err := dfs.DFS(g, "a",
		dfs.WithOnVisit(func(v pgm.Vertex) error { events = append(events, "in:"+v.ID()); return nil }),
		dfs.WithOnExit(func(v pgm.Vertex) error { events = append(events, "out:"+v.ID()); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"in:a", "in:b", "out:b", "out:a"}, events)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "a", dfs.WithOnExit(func(v pgm.Vertex) error {
		if v.ID() == "a" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order, "aborted traversals clear the post-order")

	_, err = dfs.DFS(g, "a", dfs.WithOnVisit(func(pgm.Vertex) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildGraph(t, deps, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "a", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDFS_SelfLoop(t *testing.T) {
	g := buildGraph(t, []link{{"a", "self", "a"}, {"a", "x", "b"}}, nil, core.WithLoops())

	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, res.Order)
}

func TestDFS_ReadOnlyView(t *testing.T) {
	g := buildGraph(t, deps, []string{"f"})

	want, err := dfs.DFS(g, "a", dfs.WithFullTraversal())
	require.NoError(t, err)
	got, err := dfs.DFS(readonly.NewGraph(g), "a", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
