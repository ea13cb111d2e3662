// Command pgconform runs the property-graph conformance suites against the
// in-memory backend and reports per-case results.
package main

import "github.com/seyyedshah/blueprints/cmd/pgconform/commands"

func main() {
	commands.Execute()
}
