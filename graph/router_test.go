package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, n int, edges ...Edge) *DirectedWeightedGraph {
	t.Helper()
	g := NewDirectedWeightedGraph(n)
	for i, e := range edges {
		id, err := g.AddEdge(e)
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
	return g
}

func TestGraph_AddEdge(t *testing.T) {
	g := buildGraph(t, 3, Edge{0, 1, 1}, Edge{0, 2, 2}, Edge{1, 2, 3})

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []EdgeID{0, 1}, g.IncidentEdges(0))
	assert.Empty(t, g.IncidentEdges(2))
	assert.Equal(t, Edge{1, 2, 3}, g.Edge(2))

	_, err := g.AddEdge(Edge{0, 3, 1})
	assert.Error(t, err)
	_, err = g.AddEdge(Edge{-1, 0, 1})
	assert.Error(t, err)
}

func TestRouter_BuildRoute(t *testing.T) {
	// 0 -> 1 -> 2 is cheaper than the direct 0 -> 2 edge
	g := buildGraph(t, 4,
		Edge{0, 1, 1},
		Edge{1, 2, 1},
		Edge{0, 2, 5},
		Edge{2, 0, 1},
	)
	r, err := NewRouter(g)
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to VertexID
		found    bool
		weight   float64
		edges    []EdgeID
	}{
		{"two hops", 0, 2, true, 2, []EdgeID{0, 1}},
		{"direct", 0, 1, true, 1, []EdgeID{0}},
		{"around the cycle", 1, 0, true, 2, []EdgeID{1, 3}},
		{"same vertex", 2, 2, true, 0, []EdgeID{}},
		{"unreachable", 0, 3, false, 0, nil},
		{"out of range", 0, 9, false, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := r.BuildRoute(tt.from, tt.to)
			require.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.weight, info.Weight)
			assert.Equal(t, tt.edges, info.Edges)
		})
	}
}

func TestRouter_ParallelEdgesKeepFirstOnTie(t *testing.T) {
	g := buildGraph(t, 2, Edge{0, 1, 3}, Edge{0, 1, 3}, Edge{0, 1, 4})
	r, err := NewRouter(g)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		info, ok := r.BuildRoute(0, 1)
		require.True(t, ok)
		assert.Equal(t, []EdgeID{0}, info.Edges)
	}
}

func TestRouter_NegativeWeight(t *testing.T) {
	g := buildGraph(t, 2, Edge{0, 1, -1})
	_, err := NewRouter(g)
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestRouter_RestoreFromData(t *testing.T) {
	g := buildGraph(t, 3, Edge{0, 1, 1.5}, Edge{1, 2, 2.25}, Edge{0, 2, 10})
	built, err := NewRouter(g)
	require.NoError(t, err)

	data := built.InternalData()
	copied := make([][]RouteData, len(data))
	for i := range data {
		copied[i] = append([]RouteData(nil), data[i]...)
	}

	restored, err := NewRouterFromData(g, copied)
	require.NoError(t, err)

	for from := 0; from < 3; from++ {
		for to := 0; to < 3; to++ {
			want, wantOK := built.BuildRoute(from, to)
			got, gotOK := restored.BuildRoute(from, to)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, want, got)
		}
	}
}

func TestNewRouterFromData_Validation(t *testing.T) {
	g := buildGraph(t, 2, Edge{0, 1, 1})

	_, err := NewRouterFromData(g, [][]RouteData{{}})
	assert.Error(t, err)

	_, err = NewRouterFromData(g, [][]RouteData{make([]RouteData, 2), make([]RouteData, 1)})
	assert.Error(t, err)

	bad := [][]RouteData{
		{{Reachable: true}, {Reachable: true, Weight: 1, PrevEdge: 7, HasPrevEdge: true}},
		make([]RouteData, 2),
	}
	_, err = NewRouterFromData(g, bad)
	assert.Error(t, err)
}

func TestRouter_EmptyGraph(t *testing.T) {
	r, err := NewRouter(NewDirectedWeightedGraph(0))
	require.NoError(t, err)
	_, ok := r.BuildRoute(0, 0)
	assert.False(t, ok)
	assert.Empty(t, r.InternalData())
}
