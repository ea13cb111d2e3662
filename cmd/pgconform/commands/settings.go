package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/seyyedshah/blueprints/conformance"
	"github.com/seyyedshah/blueprints/core"
	"github.com/seyyedshah/blueprints/pgm"
)

// settings is the merged view of flags, environment and config file.
//
//	# .pgconform.yaml
//	suites: [edge, vertex]
//	multi_edges: true
//	log_level: debug
type settings struct {
	LogLevel       string   `mapstructure:"log_level"`
	JSONLogs       bool     `mapstructure:"json_logs"`
	Profile        string   `mapstructure:"profile"`
	Suites         []string `mapstructure:"suites"`
	MultiEdges     bool     `mapstructure:"multi_edges"`
	Loops          bool     `mapstructure:"loops"`
	IgnoreIDs      bool     `mapstructure:"ignore_ids"`
	DefaultIndices bool     `mapstructure:"default_indices"`
	MetricsFile    string   `mapstructure:"metrics_file"`
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("pgconform: decode settings: %w", err)
	}

	return s, nil
}

// plan is what a run checks: the claimed features, the suites and the
// backend options that realize them.
type plan struct {
	Profile conformance.Profile
	Options []core.GraphOption
}

// resolve merges the optional profile with the topology flags. A flag can
// only enable a policy; it never revokes one the profile grants.
func (s settings) resolve() (plan, error) {
	var p conformance.Profile
	if s.Profile != "" {
		loaded, err := conformance.ReadProfile(s.Profile)
		if err != nil {
			return plan{}, err
		}
		p = loaded
	} else {
		p = conformance.Profile{Name: "core", Features: core.NewGraph().Features()}
	}

	f := &p.Features
	f.AllowsDuplicateEdges = f.AllowsDuplicateEdges || s.MultiEdges
	f.AllowsSelfLoops = f.AllowsSelfLoops || s.Loops
	f.IgnoresSuppliedIDs = f.IgnoresSuppliedIDs || s.IgnoreIDs
	if len(s.Suites) > 0 {
		p.Suites = s.Suites
	}

	return plan{Profile: p, Options: graphOptions(p.Features, s.DefaultIndices)}, nil
}

// graphOptions maps topology features onto core options.
func graphOptions(f pgm.Features, defaultIndices bool) []core.GraphOption {
	var opts []core.GraphOption
	if f.AllowsDuplicateEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	if f.AllowsSelfLoops {
		opts = append(opts, core.WithLoops())
	}
	if f.IgnoresSuppliedIDs {
		opts = append(opts, core.WithIgnoreSuppliedIDs())
	}
	if defaultIndices {
		opts = append(opts, core.WithDefaultIndices())
	}

	return opts
}
