package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seyyedshah/blueprints/conformance"
	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// ErrCasesFailed is returned by run when at least one case failed.
var ErrCasesFailed = errors.New("pgconform: conformance cases failed")

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the conformance suites against a fresh core graph per case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}

			return runSuites(cmd, s)
		},
	}
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	mustBind(v, cmd.Flags())

	return cmd
}

func runSuites(cmd *cobra.Command, s settings) error {
	log, err := newLogger(cmd.ErrOrStderr(), s)
	if err != nil {
		return err
	}
	p, err := s.resolve()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	runner, err := conformance.NewRunner(conformance.Config{
		Features:   p.Profile.Features,
		NewGraph:   func() pgm.Graph { return core.NewGraph(p.Options...) },
		Suites:     p.Profile.Suites,
		Logger:     &log,
		Registerer: reg,
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("profile", p.Profile.Name).
		Strs("suites", p.Profile.Suites).
		Bool("multi_edges", p.Profile.Features.AllowsDuplicateEdges).
		Bool("loops", p.Profile.Features.AllowsSelfLoops).
		Msg("starting conformance run")

	results, runErr := runner.Run(cmd.Context())
	if err := report(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if s.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(s.MetricsFile, reg); err != nil {
			return fmt.Errorf("pgconform: write metrics: %w", err)
		}
		log.Debug().Str("path", s.MetricsFile).Msg("metrics written")
	}
	if runErr != nil {
		return runErr
	}
	if n := conformance.Summary(results)[conformance.Failed]; n > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, n, len(results))
	}

	return nil
}

// report prints one line per case, the failure messages, and a summary.
func report(w io.Writer, results []conformance.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s/%s\t%s\n", r.Status, r.Suite, r.Case, r.Elapsed.Round(time.Microsecond))
		if r.Status == conformance.Failed {
			for _, m := range r.Messages {
				fmt.Fprintf(tw, "\t    %s\t\n", m)
			}
		}
	}
	sum := conformance.Summary(results)
	fmt.Fprintf(tw, "\n%d passed, %d failed, %d skipped\n",
		sum[conformance.Passed], sum[conformance.Failed], sum[conformance.Skipped])

	return tw.Flush()
}
