package conformance_test

import (
	"testing"

	"github.com/seyyedshah/blueprints/conformance"
	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// TestRun_DefaultIndices drives the testify entry point against a backend
// that starts with indices already registered.
func TestRun_DefaultIndices(t *testing.T) {
	opts := []core.GraphOption{core.WithDefaultIndices(), core.WithLoops()}
	conformance.Run(t, conformance.Config{
		Features: core.NewGraph(opts...).Features(),
		NewGraph: func() pgm.Graph { return core.NewGraph(opts...) },
	})
}
