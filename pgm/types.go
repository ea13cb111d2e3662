// File: types.go
// Role: Discriminants (ElementKind, IndexType), index Parameter, Features and sentinel errors.

package pgm

import "errors"

// Sentinel errors shared by every backend. Backends wrap them with context
// (fmt.Errorf("%w: ...")); callers match with errors.Is.
var (
	// ErrElementNotFound indicates a vertex or edge is absent from the graph,
	// or belongs to a different graph instance.
	ErrElementNotFound = errors.New("pgm: element not found")

	// ErrDuplicateID indicates a caller-supplied id is already in use.
	ErrDuplicateID = errors.New("pgm: duplicate element id")

	// ErrDuplicateIndexName indicates an index with the same name already exists.
	ErrDuplicateIndexName = errors.New("pgm: duplicate index name")

	// ErrIndexNotFound indicates the index is absent, dropped, or indexes another element kind.
	ErrIndexNotFound = errors.New("pgm: index not found")

	// ErrUnsupportedTopology indicates a self-loop on a backend that forbids loops.
	ErrUnsupportedTopology = errors.New("pgm: unsupported topology")

	// ErrAutomaticIndexWrite indicates a direct Put/Remove on an automatic index.
	ErrAutomaticIndexWrite = errors.New("pgm: automatic index entries are maintained by the graph")

	// ErrInvalidPropertyKey indicates an empty or reserved property key.
	ErrInvalidPropertyKey = errors.New("pgm: invalid property key")
)

// Reserved property keys.
const (
	// KeyID is reserved on every element.
	KeyID = "id"
	// KeyLabel is reserved on edges.
	KeyLabel = "label"
)

// ElementKind discriminates the two element kinds.
// It is fixed at index creation and selects the container's element type.
type ElementKind uint8

const (
	// VertexKind marks vertices and vertex indices.
	VertexKind ElementKind = iota + 1
	// EdgeKind marks edges and edge indices.
	EdgeKind
)

// String returns "vertex", "edge" or "unknown".
func (k ElementKind) String() string {
	switch k {
	case VertexKind:
		return "vertex"
	case EdgeKind:
		return "edge"
	default:
		return "unknown"
	}
}

// Valid reports whether k is VertexKind or EdgeKind.
func (k ElementKind) Valid() bool { return k == VertexKind || k == EdgeKind }

// IndexType is MANUAL or AUTOMATIC and never changes after creation.
type IndexType uint8

const (
	// Manual indices are maintained only by explicit Put/Remove calls.
	Manual IndexType = iota + 1
	// Automatic indices are maintained by the backend on every mutation.
	Automatic
)

// String returns "MANUAL", "AUTOMATIC" or "UNKNOWN".
func (t IndexType) String() string {
	switch t {
	case Manual:
		return "MANUAL"
	case Automatic:
		return "AUTOMATIC"
	default:
		return "UNKNOWN"
	}
}

// Parameter is an opaque (name, value) pair passed at index creation.
// Its semantics are backend-defined; the model passes it through unmodified.
type Parameter struct {
	Name  string
	Value any
}

// NewParameter is shorthand for Parameter{Name: name, Value: value}.
func NewParameter(name string, value any) Parameter {
	return Parameter{Name: name, Value: value}
}

// Features is the capability descriptor of a backend.
//
// Each flag is an independent predicate; no precedence between flags is implied.
// The conformance suite gates assertions on these flags instead of failing.
type Features struct {
	// SupportsVertexIteration is true when Graph.Vertices enumerates the full population.
	SupportsVertexIteration bool `yaml:"supports_vertex_iteration" mapstructure:"supports_vertex_iteration"`

	// SupportsEdgeIteration is true when Graph.Edges enumerates the full population.
	SupportsEdgeIteration bool `yaml:"supports_edge_iteration" mapstructure:"supports_edge_iteration"`

	// AllowsDuplicateEdges is true when several edges may share (out, in, label).
	AllowsDuplicateEdges bool `yaml:"allows_duplicate_edges" mapstructure:"allows_duplicate_edges"`

	// AllowsSelfLoops is true when an edge may have out == in.
	AllowsSelfLoops bool `yaml:"allows_self_loops" mapstructure:"allows_self_loops"`

	// IgnoresSuppliedIDs is true when the backend assigns every id itself.
	IgnoresSuppliedIDs bool `yaml:"ignores_supplied_ids" mapstructure:"ignores_supplied_ids"`

	// SupportsIndices is true when the graph implements IndexableGraph.
	SupportsIndices bool `yaml:"supports_indices" mapstructure:"supports_indices"`
}
