// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: capability flags, Features, Stats and Clear.
// Policy:
//   - No algorithms here.
//   - Flags are immutable after construction.

package core

import (
	"fmt"

	"github.com/seyyedshah/blueprints/pgm"
)

// Compile-time check: *Graph satisfies the full indexable capability set.
var _ pgm.IndexableGraph = (*Graph)(nil)

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted
	IgnoresIDs  bool // ids always generated

	VertexCount   int
	EdgeCount     int
	SelfLoopCount int
	IndexCount    int
	AutoIndexes   int
}

// Multigraph reports whether edges sharing (out, in, label) are permitted.
// If false, a repeated AddEdge returns the existing edge.
// Complexity: O(1).
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
// If false, AddEdge(v, v, ...) returns pgm.ErrUnsupportedTopology.
// Complexity: O(1).
func (g *Graph) Looped() bool { return g.allowLoops }

// IgnoresSuppliedIDs reports whether every id is generated by the graph.
// Complexity: O(1).
func (g *Graph) IgnoresSuppliedIDs() bool { return g.ignoreIDs }

// Features reports the capability descriptor derived from the options.
// Enumeration and indices are always supported by the in-memory backend.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pass Features() to conformance.Config to drive the suite with this backend's policy.
func (g *Graph) Features() pgm.Features {
	return pgm.Features{
		SupportsVertexIteration: true,
		SupportsEdgeIteration:   true,
		AllowsDuplicateEdges:    g.allowMulti,
		AllowsSelfLoops:         g.allowLoops,
		IgnoresSuppliedIDs:      g.ignoreIDs,
		SupportsIndices:         true,
	}
}

// Stats produces a deterministic, read-only snapshot of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muElem read lock, count vertices, edges and self-loops.
//   - Stage 2: Under muIndex read lock, count indices by type.
//
// Complexity:
//   - Time O(E + I), Space O(1).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		IgnoresIDs:  g.ignoreIDs,
	}

	g.muElem.RLock()
	stats.VertexCount = len(g.vertices)
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.out == e.in {
			stats.SelfLoopCount++
		}
	}
	g.muElem.RUnlock()

	g.muIndex.RLock()
	stats.IndexCount = len(g.indices)
	for _, ix := range g.indices {
		if ix.Type() == pgm.Automatic {
			stats.AutoIndexes++
		}
	}
	g.muIndex.RUnlock()

	return &stats
}

// Clear removes every element and index while preserving configuration flags.
// Elements held by callers report pgm.ErrElementNotFound afterwards.
// Default indices are recreated when WithDefaultIndices was given.
// Complexity: O(V + E + I).
func (g *Graph) Clear() {
	g.muElem.Lock()
	for _, v := range g.vertices {
		v.removed = true
	}
	for _, e := range g.edges {
		e.removed = true
	}
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.nextVertexID = 0
	g.nextEdgeID = 0

	g.muIndex.Lock()
	for _, ix := range g.indices {
		ix.drop()
	}
	g.indices = make(map[string]indexer)
	g.muIndex.Unlock()
	g.muElem.Unlock()

	if g.defaultIndices {
		g.createDefaultIndices()
	}
}

// String returns a compact description such as "coregraph[vertices:3 edges:2]".
func (g *Graph) String() string {
	g.muElem.RLock()
	defer g.muElem.RUnlock()

	return fmt.Sprintf("coregraph[vertices:%d edges:%d]", len(g.vertices), len(g.edges))
}
