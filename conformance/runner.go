// File: runner.go
// Role: Runs the case table outside go test and reports per-case results.
//
// Each case runs on its own goroutine so FailNow can stop it with
// runtime.Goexit, the same way the testing package does.

package conformance

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Status is the outcome of one case.
type Status string

// Case outcomes.
const (
	Passed  Status = "PASS"
	Failed  Status = "FAIL"
	Skipped Status = "SKIP"
)

// Result reports one case.
type Result struct {
	Suite    string
	Case     string
	Status   Status
	Elapsed  time.Duration
	Messages []string
}

// Runner drives the case table without the testing package.
type Runner struct {
	cfg     Config
	log     zerolog.Logger
	metrics *Metrics
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, log: cfg.logger(), metrics: NewMetrics(cfg.Registerer)}, nil
}

// Run executes every selected case in table order.
// Cancellation is checked between cases; the results gathered so far are
// returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, c := range Cases() {
		if !r.cfg.enabled(c.Suite) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.runCase(c)
		r.log.Info().
			Str("suite", res.Suite).
			Str("case", res.Case).
			Str("status", string(res.Status)).
			Dur("elapsed", res.Elapsed).
			Msg("case finished")
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runCase(c Case) Result {
	res := Result{Suite: c.Suite, Case: c.Name}
	if lacks := c.missing(r.cfg.Features); lacks != "" {
		res.Status = Skipped
		res.Messages = []string{"backend lacks " + lacks}
		r.metrics.observeCase(c.Suite, resultSkip, 0)

		return res
	}

	rec := &recorder{log: r.log.With().Str("case", c.String()).Logger()}
	env := newEnv(r.cfg, c, r.log, r.metrics)
	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				rec.Errorf("panic: %v", p)
			}
		}()
		c.Run(rec, env)
	}()
	<-done
	res.Elapsed = time.Since(start)

	res.Messages = rec.messages()
	res.Status = Passed
	result := resultPass
	if rec.failed() {
		res.Status = Failed
		result = resultFail
	}
	r.metrics.observeCase(c.Suite, result, res.Elapsed)

	return res
}

// Summary counts results by status.
func Summary(results []Result) map[Status]int {
	out := map[Status]int{Passed: 0, Failed: 0, Skipped: 0}
	for _, res := range results {
		out[res.Status]++
	}

	return out
}

// recorder is the T handed to cases by the Runner.
type recorder struct {
	mu   sync.Mutex
	fail bool
	msgs []string
	log  zerolog.Logger
}

var _ T = (*recorder)(nil)

func (r *recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = true
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.mu.Lock()
	r.fail = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *recorder) Helper() {}

func (r *recorder) Logf(format string, args ...any) {
	r.log.Debug().Msgf(format, args...)
}

func (r *recorder) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.fail
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.msgs...)
}
