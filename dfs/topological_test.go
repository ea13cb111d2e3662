package dfs_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/dfs"
	"github.com/seyyedshah/blueprints/pgm"
	"github.com/seyyedshah/blueprints/readonly"
)

// assertTopological checks that every edge of g with one of labels goes forward in order.
func assertTopological(t *testing.T, g pgm.Graph, order []string, labels ...string) {
	t.Helper()
	for e := range g.Edges() {
		if len(labels) > 0 && !slices.Contains(labels, e.Label()) {
			continue
		}
		from := slices.Index(order, e.OutVertex().ID())
		to := slices.Index(order, e.InVertex().ID())
		require.NotEqual(t, -1, from)
		require.NotEqual(t, -1, to)
		assert.Less(t, from, to, "edge %s must go forward", e.ID())
	}
}

func TestTopologicalSort_DAG(t *testing.T) {
	g := buildGraph(t, deps, []string{"f"})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "a", "e", "c", "b", "d"}, order)
	assertTopological(t, g, order)

	view, err := dfs.TopologicalSort(readonly.NewGraph(g))
	require.NoError(t, err)
	assert.Equal(t, order, view)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := buildGraph(t, append(slices.Clone(deps), link{"d", "dep", "a"}), []string{"f"})

	_, err := dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	order, err := dfs.TopologicalSort(g, dfs.WithOrderingLabels("opt"))
	require.NoError(t, err, "the cycle uses only dep edges")
	assert.Len(t, order, 6)
	assertTopological(t, g, order, "opt")
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildGraph(t, deps, nil)
	_, err = dfs.TopologicalSort(noVertexIteration{g})
	require.ErrorIs(t, err, dfs.ErrNoVertexIteration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
