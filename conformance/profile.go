package conformance

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seyyedshah/blueprints/pgm"
)

// Profile is the on-disk description of a backend configuration to check.
//
//	name: multigraph
//	features:
//	  supports_vertex_iteration: true
//	  allows_duplicate_edges: true
//	suites: [edge, vertex]
type Profile struct {
	Name     string       `yaml:"name,omitempty"`
	Features pgm.Features `yaml:"features"`
	Suites   []string     `yaml:"suites,omitempty"`
}

// LoadProfile decodes a YAML profile from r. Unknown fields are rejected.
func LoadProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("conformance: decode profile: %w", err)
	}
	probe := Config{NewGraph: func() pgm.Graph { return nil }, Suites: p.Suites}
	if err := probe.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// ReadProfile loads the YAML profile stored at path.
func ReadProfile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("conformance: open profile: %w", err)
	}
	defer f.Close()

	return LoadProfile(f)
}

// WriteProfile encodes p as YAML to w.
func WriteProfile(w io.Writer, p Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("conformance: encode profile: %w", err)
	}

	return enc.Close()
}
