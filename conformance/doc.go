// Package conformance is the behavioral contract every pgm backend must satisfy.
//
// The contract is a table of Case values grouped in suites (edge, vertex,
// index, readonly). Each case checks one behavior against a fresh graph and is
// parameterized by the backend's pgm.Features: cases whose capability is not
// supported are skipped, and assertions that depend on a flag branch on it
// rather than fail.
//
// Two entry points share the table:
//
//	Run(t, cfg)         drives the cases as a testify suite under go test
//	NewRunner(cfg).Run  drives them anywhere else and returns per-case Results
//
// Diagnostics (elapsed time and element counts per operation) are logged at
// debug level through zerolog and, when a prometheus.Registerer is supplied,
// recorded as blueprints_conformance_* metrics. They are informational only.
//
// Backends must return comparable element values: the suite checks that an
// edge reached through different paths is == to itself.
package conformance
