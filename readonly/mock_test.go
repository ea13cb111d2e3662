// Package readonly_test holds testify mocks used as spy bases.
//
// Purpose:
//   - Prove rejected writes never reach the base (AssertNotCalled).
//   - Count how far a base sequence was pulled (laziness checks).

package readonly_test

import (
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/seyyedshah/blueprints/pgm"
)

// mockGraph is a spy pgm.IndexableGraph.
type mockGraph struct {
	mock.Mock
}

var _ pgm.IndexableGraph = (*mockGraph)(nil)

func (m *mockGraph) Features() pgm.Features {
	return m.Called().Get(0).(pgm.Features)
}

func (m *mockGraph) AddVertex(id string) (pgm.Vertex, error) {
	args := m.Called(id)
	v, _ := args.Get(0).(pgm.Vertex)

	return v, args.Error(1)
}

func (m *mockGraph) Vertex(id string) (pgm.Vertex, error) {
	args := m.Called(id)
	v, _ := args.Get(0).(pgm.Vertex)

	return v, args.Error(1)
}

func (m *mockGraph) RemoveVertex(v pgm.Vertex) error {
	return m.Called(v).Error(0)
}

func (m *mockGraph) Vertices() iter.Seq[pgm.Vertex] {
	return m.Called().Get(0).(iter.Seq[pgm.Vertex])
}

func (m *mockGraph) AddEdge(id string, out, in pgm.Vertex, label string) (pgm.Edge, error) {
	args := m.Called(id, out, in, label)
	e, _ := args.Get(0).(pgm.Edge)

	return e, args.Error(1)
}

func (m *mockGraph) Edge(id string) (pgm.Edge, error) {
	args := m.Called(id)
	e, _ := args.Get(0).(pgm.Edge)

	return e, args.Error(1)
}

func (m *mockGraph) RemoveEdge(e pgm.Edge) error {
	return m.Called(e).Error(0)
}

func (m *mockGraph) Edges() iter.Seq[pgm.Edge] {
	return m.Called().Get(0).(iter.Seq[pgm.Edge])
}

func (m *mockGraph) CreateManualIndex(name string, kind pgm.ElementKind, params ...pgm.Parameter) (pgm.AnyIndex, error) {
	args := m.Called(name, kind, params)
	ix, _ := args.Get(0).(pgm.AnyIndex)

	return ix, args.Error(1)
}

func (m *mockGraph) CreateAutomaticIndex(name string, kind pgm.ElementKind, autoKeys []string, params ...pgm.Parameter) (pgm.AnyIndex, error) {
	args := m.Called(name, kind, autoKeys, params)
	ix, _ := args.Get(0).(pgm.AnyIndex)

	return ix, args.Error(1)
}

func (m *mockGraph) Index(name string, kind pgm.ElementKind) (pgm.AnyIndex, error) {
	args := m.Called(name, kind)
	ix, _ := args.Get(0).(pgm.AnyIndex)

	return ix, args.Error(1)
}

func (m *mockGraph) Indices() iter.Seq[pgm.AnyIndex] {
	return m.Called().Get(0).(iter.Seq[pgm.AnyIndex])
}

func (m *mockGraph) DropIndex(name string) error {
	return m.Called(name).Error(0)
}

// mockVertex is a spy pgm.Vertex.
type mockVertex struct {
	mock.Mock
	id string
}

var _ pgm.Vertex = (*mockVertex)(nil)

func (m *mockVertex) ID() string            { return m.id }
func (m *mockVertex) Kind() pgm.ElementKind { return pgm.VertexKind }

func (m *mockVertex) Property(key string) (any, bool) {
	args := m.Called(key)

	return args.Get(0), args.Bool(1)
}

func (m *mockVertex) PropertyKeys() []string {
	keys, _ := m.Called().Get(0).([]string)

	return keys
}

func (m *mockVertex) SetProperty(key string, value any) error {
	return m.Called(key, value).Error(0)
}

func (m *mockVertex) RemoveProperty(key string) (any, error) {
	args := m.Called(key)

	return args.Get(0), args.Error(1)
}

func (m *mockVertex) OutEdges(labels ...string) iter.Seq[pgm.Edge] {
	return m.Called(labels).Get(0).(iter.Seq[pgm.Edge])
}

func (m *mockVertex) InEdges(labels ...string) iter.Seq[pgm.Edge] {
	return m.Called(labels).Get(0).(iter.Seq[pgm.Edge])
}

// mockIndex is a spy manual vertex index.
type mockIndex struct {
	mock.Mock
	name string
}

var _ pgm.Index[pgm.Vertex] = (*mockIndex)(nil)

func (m *mockIndex) Name() string          { return m.name }
func (m *mockIndex) Kind() pgm.ElementKind { return pgm.VertexKind }
func (m *mockIndex) Type() pgm.IndexType   { return pgm.Manual }

func (m *mockIndex) Put(key string, value any, element pgm.Vertex) error {
	return m.Called(key, value, element).Error(0)
}

func (m *mockIndex) Get(key string, value any) iter.Seq[pgm.Vertex] {
	return m.Called(key, value).Get(0).(iter.Seq[pgm.Vertex])
}

func (m *mockIndex) Count(key string, value any) int {
	return m.Called(key, value).Int(0)
}

func (m *mockIndex) Remove(key string, value any, element pgm.Vertex) error {
	return m.Called(key, value, element).Error(0)
}

// countingSeq yields items and records how many were pulled.
func countingSeq[T any](items []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			*pulled++
			if !yield(it) {
				return
			}
		}
	}
}
