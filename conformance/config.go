// File: config.go
// Role: Harness configuration and validation.

package conformance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/seyyedshah/blueprints/pgm"
)

// Sentinel errors for harness configuration.
var (
	// ErrNoGraphFactory indicates Config.NewGraph is nil.
	ErrNoGraphFactory = errors.New("conformance: NewGraph is required")

	// ErrUnknownSuite indicates Config.Suites names a suite that does not exist.
	ErrUnknownSuite = errors.New("conformance: unknown suite")
)

// Suite names.
const (
	SuiteEdge     = "edge"
	SuiteVertex   = "vertex"
	SuiteIndex    = "index"
	SuiteReadOnly = "readonly"
)

// SuiteNames lists every suite in execution order.
func SuiteNames() []string {
	return []string{SuiteEdge, SuiteVertex, SuiteIndex, SuiteReadOnly}
}

// Config drives one conformance run.
type Config struct {
	// Features describes the backend under test.
	Features pgm.Features

	// NewGraph returns a fresh, empty graph. It is called once per case
	// (some cases call it twice to obtain an unrelated graph).
	NewGraph func() pgm.Graph

	// Suites restricts the run; empty means every suite.
	Suites []string

	// Logger receives performance lines at debug level; nil disables logging.
	Logger *zerolog.Logger

	// Registerer receives the harness metrics; nil disables metrics.
	Registerer prometheus.Registerer
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.NewGraph == nil {
		return ErrNoGraphFactory
	}
	known := SuiteNames()
	for _, s := range c.Suites {
		if !slices.Contains(known, s) {
			return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSuite, s, known)
		}
	}

	return nil
}

// enabled reports whether suite is selected.
func (c Config) enabled(suite string) bool {
	return len(c.Suites) == 0 || slices.Contains(c.Suites, suite)
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}

	return *c.Logger
}
