// File: case.go
// Role: The case table, capability gating and the per-case environment.

package conformance

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/seyyedshah/blueprints/pgm"
)

// T is the subset of *testing.T a case uses. The Runner supplies its own.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Helper()
	Logf(format string, args ...any)
}

// Capability names one pgm.Features flag a case depends on.
type Capability string

// Capabilities a case may require.
const (
	VertexIteration Capability = "vertex_iteration"
	EdgeIteration   Capability = "edge_iteration"
	DuplicateEdges  Capability = "duplicate_edges"
	SelfLoops       Capability = "self_loops"
	Indices         Capability = "indices"
)

// In reports whether f provides c.
func (c Capability) In(f pgm.Features) bool {
	switch c {
	case VertexIteration:
		return f.SupportsVertexIteration
	case EdgeIteration:
		return f.SupportsEdgeIteration
	case DuplicateEdges:
		return f.AllowsDuplicateEdges
	case SelfLoops:
		return f.AllowsSelfLoops
	case Indices:
		return f.SupportsIndices
	default:
		return false
	}
}

// Case is one behavior of the contract.
type Case struct {
	Suite    string
	Name     string
	Requires []Capability
	Run      func(t T, env *Env)
}

// String returns "<suite>/<name>".
func (c Case) String() string { return c.Suite + "/" + c.Name }

// missing returns the required capabilities f lacks, joined by commas.
func (c Case) missing(f pgm.Features) string {
	var lacks []string
	for _, need := range c.Requires {
		if !need.In(f) {
			lacks = append(lacks, string(need))
		}
	}

	return strings.Join(lacks, ",")
}

// Cases returns the full table in execution order.
func Cases() []Case {
	var all []Case
	all = append(all, edgeCases()...)
	all = append(all, vertexCases()...)
	all = append(all, indexCases()...)
	all = append(all, readOnlyCases()...)

	return all
}

// casesOf returns the cases of one suite.
func casesOf(suite string) []Case {
	var out []Case
	for _, c := range Cases() {
		if c.Suite == suite {
			out = append(out, c)
		}
	}

	return out
}

// Env is handed to every case: the features under test, a graph factory and
// the performance sink.
type Env struct {
	Features pgm.Features

	suite    string
	name     string
	newGraph func() pgm.Graph
	log      zerolog.Logger
	metrics  *Metrics
}

func newEnv(cfg Config, c Case, log zerolog.Logger, m *Metrics) *Env {
	return &Env{
		Features: cfg.Features,
		suite:    c.Suite,
		name:     c.Name,
		newGraph: cfg.NewGraph,
		log:      log,
		metrics:  m,
	}
}

// Graph returns a fresh graph from the configured factory.
func (e *Env) Graph(t T) pgm.Graph {
	t.Helper()
	g := e.newGraph()
	require.NotNil(t, g, "NewGraph returned nil")

	return g
}

// IndexableGraph returns a fresh graph that must implement pgm.IndexableGraph.
func (e *Env) IndexableGraph(t T) pgm.IndexableGraph {
	t.Helper()
	g := e.Graph(t)
	ig, ok := g.(pgm.IndexableGraph)
	require.True(t, ok, "%T does not implement pgm.IndexableGraph but reports SupportsIndices", g)

	return ig
}

// Perf records a timed operation: n elements, what was done, and how long it took.
func (e *Env) Perf(g pgm.Graph, n int, what string, elapsed time.Duration) {
	e.log.Debug().
		Str("suite", e.suite).
		Str("case", e.name).
		Str("graph", fmt.Sprint(g)).
		Int("elements", n).
		Dur("elapsed", elapsed).
		Msg(what)
	e.metrics.addElements(e.suite, n)
}

// IDs returns n distinct vertex ids for the current case.
func (e *Env) IDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%d", e.name, i+1)
	}

	return ids
}

// stopwatch returns a function reporting the time elapsed since the call.
func stopwatch() func() time.Duration {
	start := time.Now()

	return func() time.Duration { return time.Since(start) }
}
