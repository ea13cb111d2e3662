package core_test

import (
	"fmt"

	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	marko, _ := g.AddVertex("marko")
	peter, _ := g.AddVertex("peter")
	lop, _ := g.AddVertex("lop")
	_, _ = g.AddEdge("", marko, lop, "created")
	_, _ = g.AddEdge("", peter, lop, "created")
	_, _ = g.AddEdge("", marko, peter, "knows")

	fmt.Println(g)
	fmt.Println("creators of lop:", pgm.Count(lop.InEdges("created")))

	_ = g.RemoveVertex(marko)
	fmt.Println(g)

	// Output:
	// coregraph[vertices:3 edges:3]
	// creators of lop: 2
	// coregraph[vertices:2 edges:1]
}

// ExampleGraph_CreateAutomaticIndex shows an index kept in sync with property writes.
func ExampleGraph_CreateAutomaticIndex() {
	g := core.NewGraph()
	byLang, _ := pgm.CreateAutomaticIndex[pgm.Vertex](g, "by-lang", []string{"lang"})

	lop, _ := g.AddVertex("lop")
	ripple, _ := g.AddVertex("ripple")
	_ = lop.SetProperty("lang", "java")
	_ = ripple.SetProperty("lang", "java")
	_ = ripple.SetProperty("lang", "go")

	for v := range byLang.Get("lang", "java") {
		fmt.Println("java:", v.ID())
	}
	fmt.Println("go:", byLang.Count("lang", "go"))

	// Output:
	// java: lop
	// go: 1
}

// ExampleWithLoops shows the self-loop policy.
func ExampleWithLoops() {
	strict := core.NewGraph()
	v, _ := strict.AddVertex("A")
	_, err := strict.AddEdge("", v, v, "self")
	fmt.Println(err)

	looped := core.NewGraph(core.WithLoops())
	w, _ := looped.AddVertex("A")
	e, _ := looped.AddEdge("", w, w, "self")
	fmt.Println(e)

	// Output:
	// pgm: unsupported topology: self-loop on vertex "A"
	// e[e1][A-self->A]
}
