package graph

import "fmt"

// VertexID identifies a vertex in [0, VertexCount)
type VertexID = int

// EdgeID is the insertion index of an edge
type EdgeID = int

// Edge is a directed weighted edge
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph is a fixed-size vertex set with an append-only edge list
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	if vertexCount < 0 {
		vertexCount = 0
	}
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id
func (g *DirectedWeightedGraph) AddEdge(e Edge) (EdgeID, error) {
	if e.From < 0 || e.From >= len(g.incidence) || e.To < 0 || e.To >= len(g.incidence) {
		return 0, fmt.Errorf("edge %d->%d out of range [0,%d)", e.From, e.To, len(g.incidence))
	}
	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id, nil
}

func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// Edges returns the edge list in id order. The slice must not be modified.
func (g *DirectedWeightedGraph) Edges() []Edge { return g.edges }

// IncidentEdges returns the ids of edges leaving v
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }
