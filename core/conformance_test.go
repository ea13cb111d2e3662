package core_test

import (
	"testing"

	"github.com/seyyedshah/blueprints/conformance"
	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// TestConformance runs the behavioral contract against every policy combination.
// Duplicate edges and self-loops are independent flags, so all four pairs are covered.
func TestConformance(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []core.GraphOption
	}{
		{name: "no-multi no-loops"},
		{name: "multi", opts: []core.GraphOption{core.WithMultiEdges()}},
		{name: "loops", opts: []core.GraphOption{core.WithLoops()}},
		{name: "multi loops", opts: []core.GraphOption{core.WithMultiEdges(), core.WithLoops()}},
		{name: "ignore ids", opts: []core.GraphOption{core.WithIgnoreSuppliedIDs(), core.WithMultiEdges()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conformance.Run(t, conformance.Config{
				Features: core.NewGraph(tc.opts...).Features(),
				NewGraph: func() pgm.Graph { return core.NewGraph(tc.opts...) },
			})
		})
	}
}
