// Package dfs provides depth-first algorithms over any pgm.Graph, raw or
// read-only: traversal, topological sort and cycle detection.
//
// Edges are directed in a property graph, so every algorithm here follows
// an edge from its out-vertex to its in-vertex, optionally restricted to a
// set of labels.
//
// What
//
//   - DFS(g, startID, opts...): pre-/post-order traversal from a root, or the
//     whole forest with WithFullTraversal; reports post-order, depths, parents.
//   - TopologicalSort(g, opts...): reverse post-order, or ErrCycleDetected.
//   - DetectCycles(g, labels...): cycles closed by back-edges, canonicalized
//     to their minimal rotation and sorted.
//
// Determinism
//
//	Results follow backend enumeration order. The in-memory core backend
//	yields vertices and edges sorted by ID, so its results are reproducible.
//
// Complexity
//
//   - Time:   O(V + E) per algorithm, plus O(C·L) for cycle canonicalization.
//   - Memory: O(V) for recursion stack and state maps.
//
// Errors
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (wraps the backend error).
//   - ErrNoVertexIteration      if a whole-graph operation meets a backend
//     that cannot enumerate vertices.
//   - ErrCycleDetected          from TopologicalSort on a cyclic graph.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
