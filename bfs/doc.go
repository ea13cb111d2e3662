// Package bfs provides breadth-first search over any pgm.Graph, raw or
// read-only, returning unweighted shortest-path distances, parent links,
// discovering edges and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Via: map from vertex → the edge that discovered it
//   - Follows out-edges, in-edges or both (WithDirection), optionally
//     restricted to a set of labels (WithLabels).
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	The traversal expands edges in the order the backend yields them. The
//	in-memory core backend yields edges sorted by ID, so its visit sequence is
//	fully reproducible. With Both, out-edges are expanded before in-edges.
//
// Read-only views
//
//	BFS only reads: it resolves the start with Graph.Vertex and expands with
//	Vertex.OutEdges/InEdges. A readonly view therefore traverses exactly like
//	its base, and the vertices handed to OnVisit are views as well.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once per direction)
//   - Memory: O(V)       (for queue, Depth, Parent, Via maps and visited set)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithDirection(bfs.Both),
//	    bfs.WithLabels("knows"),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v pgm.Vertex, depth int) error { return nil }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ctx.Err(), or a wrapped OnVisit error
//	}
//	path, _ := result.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (wraps the backend error).
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth, unknown Direction).
//   - context.Canceled / DeadlineExceeded from the supplied context.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
