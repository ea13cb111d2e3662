// Package dfs implements cycle detection for directed pgm.Graphs.
// DetectCycles runs depth-first search with three-color marking and reports
// every cycle closed by a back-edge. Self-loops are cycles of length one.
// Each cycle is rotated to its lexicographically minimal form via Booth’s
// algorithm in O(L) time, and the final list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/seyyedshah/blueprints/pgm"
)

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	labels []string            // edge labels to follow; empty means all
	state  map[string]int      // White, Gray, Black per vertex
	path   []string            // current DFS path for cycle reconstruction
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string          // collected distinct cycles
}

// DetectCycles inspects g for cycles over edges carrying one of labels
// (every edge when labels is empty).
// Returns (true, cycles, nil) if any cycles are found, each closed as
// [v0, v1, ..., v0]; if none, returns (false, nil, nil).
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNoVertexIteration: g cannot enumerate its vertices.
func DetectCycles(g pgm.Graph, labels ...string) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	if !g.Features().SupportsVertexIteration {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", ErrNoVertexIteration)
	}

	f := &cycleFinder{
		labels: labels,
		state:  make(map[string]int),
		seen:   make(map[string]struct{}),
	}
	for v := range g.Vertices() {
		if f.state[v.ID()] == White {
			f.visit(v)
		}
	}

	sort.Slice(f.cycles, func(i, j int) bool {
		return joinSig(f.cycles[i]) < joinSig(f.cycles[j])
	})
	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// visit explores v, recording a cycle for every edge into a Gray vertex.
func (f *cycleFinder) visit(v pgm.Vertex) {
	id := v.ID()
	f.state[id] = Gray
	f.path = append(f.path, id)

	for e := range v.OutEdges(f.labels...) {
		nbr := e.InVertex()
		switch f.state[nbr.ID()] {
		case White:
			f.visit(nbr)
		case Gray:
			f.record(nbr.ID())
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black
}

// record extracts the cycle from start to the top of the path, closes it,
// canonicalizes it and keeps it when its signature is new.
func (f *cycleFinder) record(start string) {
	idx := slices.Index(f.path, start)
	base := minimalRotation(f.path[idx:])
	closed := append(base, base[0])

	sig := joinSig(closed)
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}

// joinSig concatenates the elements of c with commas, producing a signature.
func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice of length len(s) in O(n) time.
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the minimal rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}
