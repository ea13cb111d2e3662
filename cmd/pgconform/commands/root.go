// Package commands holds the cobra command tree of pgconform.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PGCONFORM_LOOPS=true.
const EnvPrefix = "PGCONFORM"

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "pgconform",
		Short: "Property-graph conformance checker",
		Long: `pgconform exercises the in-memory property-graph backend with the
edge, vertex, index and read-only conformance suites.

Settings come from flags, PGCONFORM_* environment variables and an
optional YAML config file, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./.pgconform.yaml when present)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("json-logs", false, "emit JSON log lines instead of console output")
	pf.String("profile", "", "YAML profile describing the features to check")
	pf.StringSlice("suite", nil, "suites to run (edge,vertex,index,readonly); empty runs all")
	pf.Bool("multi-edges", false, "allow parallel edges in the backend")
	pf.Bool("loops", false, "allow self-loops in the backend")
	pf.Bool("ignore-ids", false, "ignore caller-supplied ids")
	pf.Bool("default-indices", false, "create the automatic vertices/edges indices")
	mustBind(v, pf)

	root.AddCommand(newRunCmd(v), newFeaturesCmd(v))

	return root
}

// flagKeys maps flag names to their config keys.
var flagKeys = map[string]string{
	"log-level":       "log_level",
	"json-logs":       "json_logs",
	"profile":         "profile",
	"suite":           "suites",
	"multi-edges":     "multi_edges",
	"loops":           "loops",
	"ignore-ids":      "ignore_ids",
	"default-indices": "default_indices",
	"metrics-file":    "metrics_file",
}

// mustBind binds every known flag of fs to its config key.
func mustBind(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("pgconform: bind flag %q: %v", f.Name, err))
		}
	})
}

// initConfig wires the config file and the environment into v.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".pgconform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("pgconform: read config: %w", err)
	}

	return nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer, s settings) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("pgconform: %w", err)
	}
	if !s.JSONLogs {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
