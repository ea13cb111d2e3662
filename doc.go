// Package blueprints is an in-memory property-graph toolkit: a set of
// capability interfaces, a thread-safe reference backend, a read-only
// wrapping layer, breadth-first traversal and a conformance suite that any
// backend can run against itself.
//
// What is a property graph?
//
//	Vertices and directed, labelled edges, each carrying a string id and a
//	map of properties. Backends differ in policy: some allow parallel edges
//	or self-loops, some assign every id themselves, some keep indices.
//	Those policies are described by pgm.Features and checked, not assumed.
//
// Packages:
//
//	pgm/          capability interfaces (Graph, IndexableGraph, Vertex, Edge,
//	              Index[T]), Features, sentinel errors and iter.Seq helpers
//	core/         thread-safe in-memory backend with manual and automatic indices
//	readonly/     wrappers that expose any backend without its write surface
//	bfs/          breadth-first search over any pgm.Graph, raw or read-only
//	conformance/  edge, vertex, index and read-only suites (testify) and a
//	              standalone Runner with zerolog/Prometheus reporting
//	cmd/pgconform the conformance CLI (cobra, viper)
//
// Quick ASCII example:
//
//	    marko ──knows──▶ vadas
//	      │
//	   created
//	      ▼
//	     lop
//
//	three vertices, two labelled edges; a read-only view of it answers every
//	query the same way and rejects every write with readonly.ErrReadOnly.
//
//	go get github.com/seyyedshah/blueprints
package blueprints
