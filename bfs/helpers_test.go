package bfs_test

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
// in slice order so that backend enumeration follows declaration order.
func buildGraph(t testing.TB, links []link, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i, l := range links {
		out := ensureVertex(t, g, l.out)
		in := ensureVertex(t, g, l.in)
		_, err := g.AddEdge(fmt.Sprintf("e%02d", i+1), out, in, l.label)
		require.NoError(t, err, "AddEdge(%s-%s->%s)", l.out, l.label, l.in)
	}

	return g
}

// ensureVertex returns the vertex id, adding it when absent.
func ensureVertex(t testing.TB, g pgm.Graph, id string) pgm.Vertex {
	t.Helper()
	if v, err := g.Vertex(id); err == nil {
		return v
	}
	v, err := g.AddVertex(id)
	require.NoError(t, err, "AddVertex(%q)", id)

	return v
}

// chain returns links v0→v1→...→v(n-1), all labelled "next".
func chain(n int) []link {
	links := make([]link, 0, n)
	for i := 0; i+1 < n; i++ {
		links = append(links, link{fmt.Sprintf("v%d", i), "next", fmt.Sprintf("v%d", i+1)})
	}

	return links
}
