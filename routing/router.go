package routing

import (
	"errors"
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

// ErrIndexMismatch is returned by Restore when the stored graph does not match
// the segments composed from the stored catalogue.
var ErrIndexMismatch = errors.New("routing index does not match catalogue")

// Router resolves itineraries between named stops
type Router struct {
	cat      *catalogue.Catalogue
	settings Settings
	graph    *graph.DirectedWeightedGraph
	index    *graph.Router
	edges    []EdgeInfo
}

// Build composes the segments of every bus in name order, builds the graph
// and computes the all-pairs index.
func Build(cat *catalogue.Catalogue, settings Settings) (*Router, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	segments := composeAll(cat, settings)
	g := graph.NewDirectedWeightedGraph(cat.StopCount())
	edges := make([]EdgeInfo, 0, len(segments))
	for _, s := range segments {
		if _, err := g.AddEdge(graph.Edge{From: s.From, To: s.To, Weight: s.Weight}); err != nil {
			return nil, fmt.Errorf("add segment of bus %q: %w", s.Bus, err)
		}
		edges = append(edges, EdgeInfo{Bus: s.Bus, Span: s.Span})
	}
	index, err := graph.NewRouter(g)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return &Router{cat: cat, settings: settings, graph: g, index: index, edges: edges}, nil
}

// Restore rebuilds a router from a stored graph and route table without
// recomputing the index. The edge descriptions are recomposed from the
// catalogue and each one must match the stored edge with the same id.
func Restore(cat *catalogue.Catalogue, settings Settings, g *graph.DirectedWeightedGraph, data [][]graph.RouteData) (*Router, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if g.VertexCount() != cat.StopCount() {
		return nil, fmt.Errorf("%w: graph has %d vertices, catalogue has %d stops",
			ErrIndexMismatch, g.VertexCount(), cat.StopCount())
	}
	segments := composeAll(cat, settings)
	if len(segments) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: graph has %d edges, catalogue yields %d",
			ErrIndexMismatch, g.EdgeCount(), len(segments))
	}
	edges := make([]EdgeInfo, len(segments))
	for id, s := range segments {
		e := g.Edge(id)
		if e.From != s.From || e.To != s.To || math.Float64bits(e.Weight) != math.Float64bits(s.Weight) {
			return nil, fmt.Errorf("%w: edge %d is %d->%d (%v), bus %q yields %d->%d (%v)",
				ErrIndexMismatch, id, e.From, e.To, e.Weight, s.Bus, s.From, s.To, s.Weight)
		}
		edges[id] = EdgeInfo{Bus: s.Bus, Span: s.Span}
	}
	index, err := graph.NewRouterFromData(g, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexMismatch, err)
	}
	return &Router{cat: cat, settings: settings, graph: g, index: index, edges: edges}, nil
}

func (r *Router) Settings() Settings { return r.settings }

func (r *Router) Graph() *graph.DirectedWeightedGraph { return r.graph }

// Index returns the all-pairs index for persistence
func (r *Router) Index() *graph.Router { return r.index }

// EdgeInfo describes the ride behind an edge id
func (r *Router) EdgeInfo(id graph.EdgeID) (EdgeInfo, bool) {
	if id < 0 || id >= len(r.edges) {
		return EdgeInfo{}, false
	}
	return r.edges[id], true
}
