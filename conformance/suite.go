// File: suite.go
// Role: go test entry point; one testify suite method per conformance suite.

package conformance

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// Suite drives the case table under go test. Use Run rather than building it by hand.
type Suite struct {
	suite.Suite

	cfg     Config
	log     zerolog.Logger
	metrics *Metrics
}

// Run executes every selected case as a subtest of t.
//
//	func TestConformance(t *testing.T) {
//		conformance.Run(t, conformance.Config{
//			Features: g.Features(),
//			NewGraph: func() pgm.Graph { return core.NewGraph() },
//		})
//	}
func Run(t *testing.T, cfg Config) {
	suite.Run(t, &Suite{cfg: cfg})
}

// SetupSuite validates the configuration and prepares diagnostics.
func (s *Suite) SetupSuite() {
	s.Require().NoError(s.cfg.Validate())
	s.log = s.cfg.logger()
	s.metrics = NewMetrics(s.cfg.Registerer)
}

// TestEdge runs the edge suite.
func (s *Suite) TestEdge() { s.runSuite(SuiteEdge) }

// TestVertex runs the vertex suite.
func (s *Suite) TestVertex() { s.runSuite(SuiteVertex) }

// TestIndex runs the index suite.
func (s *Suite) TestIndex() { s.runSuite(SuiteIndex) }

// TestReadOnly runs the read-only suite.
func (s *Suite) TestReadOnly() { s.runSuite(SuiteReadOnly) }

func (s *Suite) runSuite(name string) {
	if !s.cfg.enabled(name) {
		s.T().Skipf("suite %q not selected", name)
	}
	for _, c := range casesOf(name) {
		s.Run(c.Name, func() {
			t := s.T()
			if lacks := c.missing(s.cfg.Features); lacks != "" {
				s.metrics.observeCase(c.Suite, resultSkip, 0)
				t.Skipf("backend lacks %s", lacks)
			}

			start := time.Now()
			defer func() {
				result := resultPass
				if t.Failed() {
					result = resultFail
				}
				s.metrics.observeCase(c.Suite, result, time.Since(start))
			}()
			c.Run(t, newEnv(s.cfg, c, s.log, s.metrics))
		})
	}
}
