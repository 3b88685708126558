package graph

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned when the graph contains an edge with a negative weight
var ErrNegativeWeight = errors.New("negative edge weight")

// RouteData is one cell of the route table: the best known path from a row
// vertex to a column vertex. PrevEdge is the last edge of that path; a
// reachable cell without PrevEdge is the empty path from a vertex to itself.
type RouteData struct {
	Reachable   bool
	Weight      float64
	PrevEdge    EdgeID
	HasPrevEdge bool
}

// RouteInfo is a resolved path
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers best-path queries from a precomputed all-pairs table
type Router struct {
	graph *DirectedWeightedGraph
	data  [][]RouteData
}

// NewRouter builds the all-pairs table for g. Runs in O(V^3).
func NewRouter(g *DirectedWeightedGraph) (*Router, error) {
	n := g.VertexCount()
	r := &Router{graph: g, data: make([][]RouteData, n)}
	for v := range r.data {
		r.data[v] = make([]RouteData, n)
	}
	if err := r.initialize(); err != nil {
		return nil, err
	}
	r.relax()
	return r, nil
}

// NewRouterFromData restores a router from a table produced by InternalData
func NewRouterFromData(g *DirectedWeightedGraph, data [][]RouteData) (*Router, error) {
	n := g.VertexCount()
	if len(data) != n {
		return nil, fmt.Errorf("route table has %d rows, graph has %d vertices", len(data), n)
	}
	for i, row := range data {
		if len(row) != n {
			return nil, fmt.Errorf("route table row %d has %d cells, want %d", i, len(row), n)
		}
		for j, cell := range row {
			if cell.HasPrevEdge && (cell.PrevEdge < 0 || cell.PrevEdge >= g.EdgeCount()) {
				return nil, fmt.Errorf("route table cell %d,%d references edge %d of %d", i, j, cell.PrevEdge, g.EdgeCount())
			}
		}
	}
	return &Router{graph: g, data: data}, nil
}

func (r *Router) initialize() error {
	for v := range r.data {
		r.data[v][v] = RouteData{Reachable: true}
		for _, id := range r.graph.IncidentEdges(v) {
			e := r.graph.Edge(id)
			if e.Weight < 0 {
				return fmt.Errorf("edge %d: %w", id, ErrNegativeWeight)
			}
			cell := &r.data[v][e.To]
			if !cell.Reachable || cell.Weight > e.Weight {
				*cell = RouteData{Reachable: true, Weight: e.Weight, PrevEdge: id, HasPrevEdge: true}
			}
		}
	}
	return nil
}

func (r *Router) relax() {
	n := len(r.data)
	for through := 0; through < n; through++ {
		for from := 0; from < n; from++ {
			ft := r.data[from][through]
			if !ft.Reachable {
				continue
			}
			for to := 0; to < n; to++ {
				tt := r.data[through][to]
				if !tt.Reachable {
					continue
				}
				candidate := ft.Weight + tt.Weight
				cell := &r.data[from][to]
				if cell.Reachable && cell.Weight <= candidate {
					continue
				}
				next := RouteData{Reachable: true, Weight: candidate}
				if tt.HasPrevEdge {
					next.PrevEdge, next.HasPrevEdge = tt.PrevEdge, true
				} else {
					next.PrevEdge, next.HasPrevEdge = ft.PrevEdge, ft.HasPrevEdge
				}
				*cell = next
			}
		}
	}
}

// BuildRoute returns the best path from one vertex to another. The bool is
// false when to is unreachable.
func (r *Router) BuildRoute(from, to VertexID) (RouteInfo, bool) {
	if from < 0 || from >= len(r.data) || to < 0 || to >= len(r.data) {
		return RouteInfo{}, false
	}
	cell := r.data[from][to]
	if !cell.Reachable {
		return RouteInfo{}, false
	}
	info := RouteInfo{Weight: cell.Weight, Edges: []EdgeID{}}
	for c := cell; c.HasPrevEdge; {
		// a simple path never has more edges than vertices
		if len(info.Edges) >= len(r.data) {
			return RouteInfo{}, false
		}
		info.Edges = append(info.Edges, c.PrevEdge)
		c = r.data[from][r.graph.Edge(c.PrevEdge).From]
	}
	for i, j := 0, len(info.Edges)-1; i < j; i, j = i+1, j-1 {
		info.Edges[i], info.Edges[j] = info.Edges[j], info.Edges[i]
	}
	return info, true
}

// InternalData exposes the route table for persistence. Rows are indexed by
// source vertex, cells by destination vertex. Must not be modified.
func (r *Router) InternalData() [][]RouteData { return r.data }

func (r *Router) Graph() *DirectedWeightedGraph { return r.graph }
