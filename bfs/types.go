// Package bfs provides tunable options and error definitions
// for breadth-first search over a pgm.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/seyyedshah/blueprints/pgm"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which incident edges expand a vertex.
type Direction int

const (
	// Out follows edges from their out-vertex to their in-vertex.
	Out Direction = iota
	// In follows edges backwards, from in-vertex to out-vertex.
	In
	// Both follows edges regardless of orientation.
	Both
)

// String returns "out", "in" or "both".
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction selects out-edges, in-edges or both. Default Out.
	Direction Direction

	// Labels restricts expansion to edges carrying one of these labels.
	// Empty means every label.
	Labels []string

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v pgm.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	// Called for each candidate edge with the vertex being expanded.
	FilterEdge func(from pgm.Vertex, e pgm.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Out direction, every label
//   - no depth limit (MaxDepth == 0)
//   - no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Direction:  Out,
		OnEnqueue:  func(string, int) {},
		OnDequeue:  func(string, int) {},
		OnVisit:    func(pgm.Vertex, int) error { return nil },
		FilterEdge: func(pgm.Vertex, pgm.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which incident edges are followed.
// An unknown direction yields ErrOptionViolation.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d < Out || d > Both {
			o.err = fmt.Errorf("%w: unknown direction %s", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithLabels restricts the traversal to edges with one of the given labels.
func WithLabels(labels ...string) Option {
	return func(o *Options) {
		o.Labels = append([]string(nil), labels...)
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v pgm.Vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(from pgm.Vertex, e pgm.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
//   - Via: map from vertex ID to the ID of the edge that discovered it.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgePathTo returns the IDs of the edges along PathTo(dest).
// The start vertex yields an empty, non-nil slice.
func (r *Result) EdgePathTo(dest string) ([]string, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	edges := make([]string, 0, len(path)-1)
	for _, id := range path[1:] {
		edges = append(edges, r.Via[id])
	}

	return edges, nil
}
