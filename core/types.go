// Package core is the in-memory reference backend of the pgm property-graph model.
//
// All core APIs use separate sync.RWMutex locks internally (muElem for vertices,
// edges, adjacency and properties; muIndex for the index catalog and entries), so
// graphs can be mutated across goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidKind - index requested for an element kind other than vertex/edge.
//
// Model errors (pgm.ErrElementNotFound, pgm.ErrDuplicateID, ...) are returned
// wrapped with the offending id; match them with errors.Is.
package core

import (
	"errors"
	"sync"
)

const (
	vertexIDPrefix = "v"
	edgeIDPrefix   = "e"

	// DefaultVertexIndex is the automatic vertex index created by WithDefaultIndices.
	DefaultVertexIndex = "vertices"
	// DefaultEdgeIndex is the automatic edge index created by WithDefaultIndices.
	DefaultEdgeIndex = "edges"
)

// ErrInvalidKind indicates an element kind other than pgm.VertexKind or pgm.EdgeKind.
var ErrInvalidKind = errors.New("core: invalid element kind")

// element is the identity and property bag shared by Vertex and Edge.
// props and removed are guarded by g.muElem.
type element struct {
	g       *Graph
	id      string
	props   map[string]any
	removed bool
}

// Vertex is a node of a core Graph.
//
// Adjacency is bucketed by label: out[label][edgeID] and in[label][edgeID].
type Vertex struct {
	element

	out map[string]map[string]*Edge
	in  map[string]map[string]*Edge
}

// Edge is a directed, labeled connection between two vertices of one Graph.
type Edge struct {
	element

	label string
	out   *Vertex
	in    *Vertex
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits several edges sharing (out, in, label).
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithIgnoreSuppliedIDs makes the graph assign every vertex and edge id itself.
func WithIgnoreSuppliedIDs() GraphOption {
	return func(g *Graph) { g.ignoreIDs = true }
}

// WithDefaultIndices creates the automatic indices "vertices" and "edges"
// over every property key, at construction and after Clear.
func WithDefaultIndices() GraphOption {
	return func(g *Graph) { g.defaultIndices = true }
}

// Graph is the in-memory property graph.
//
// It supports parallel edges (multi-edges) and self-loops by option, manual and
// automatic indices, and deterministic enumeration (sorted by id).
// muElem protects elements, adjacency and properties; muIndex protects indices.
// Lock order is muElem -> muIndex.
type Graph struct {
	muElem  sync.RWMutex // guards vertices, edges, adjacency, properties
	muIndex sync.RWMutex // guards indices and their entries

	// Configuration flags
	allowMulti     bool // allow edges sharing (out, in, label)
	allowLoops     bool // allow self-loops
	ignoreIDs      bool // always generate ids
	defaultIndices bool // recreate "vertices"/"edges" automatic indices

	// Storage
	nextVertexID uint64             // atomic vertex ID generator
	nextEdgeID   uint64             // atomic edge ID generator
	vertices     map[string]*Vertex // vertex ID → Vertex
	edges        map[string]*Edge   // edge ID → Edge
	indices      map[string]indexer // index name → index
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops, no multi-edges, respects supplied ids and has no indices.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		indices:  make(map[string]indexer),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if g.defaultIndices {
		g.createDefaultIndices()
	}

	return g
}
