package requests

import (
	"fmt"
	"log/slog"

	"github.com/bluele/gcache"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// HandlerOptions tune a Handler
type HandlerOptions struct {
	// RouteCacheSize is the number of resolved itineraries kept in an LRU.
	// Zero disables the cache.
	RouteCacheSize int
	Logger         *slog.Logger
}

// Handler answers stat requests
type Handler struct {
	cat      *catalogue.Catalogue
	router   *routing.Router
	renderer *renderer.MapRenderer
	logger   *slog.Logger

	routes   gcache.Cache
	svg      string
	rendered bool
}

type routeKey struct {
	from, to string
}

func NewHandler(cat *catalogue.Catalogue, router *routing.Router, mr *renderer.MapRenderer, opts HandlerOptions) *Handler {
	h := &Handler{cat: cat, router: router, renderer: mr, logger: opts.Logger}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if opts.RouteCacheSize > 0 {
		h.routes = gcache.New(opts.RouteCacheSize).LRU().Build()
	}
	return h
}

// Handle answers every request in order and returns the assembled JSON array
func (h *Handler) Handle(reqs []StatRequest) (any, error) {
	b := formatter.NewBuilder().StartArray()
	for _, req := range reqs {
		if err := h.handleOne(b, req); err != nil {
			return nil, err
		}
	}
	return b.EndArray().Build()
}

func (h *Handler) handleOne(b *formatter.Builder, req StatRequest) error {
	switch req.Type {
	case TypeBus:
		st, ok := h.cat.BusStats(req.Name)
		if !ok {
			formatter.AddNotFound(b, req.ID)
			break
		}
		formatter.AddBus(b, req.ID, st)
	case TypeStop:
		buses, ok := h.cat.BusesForStop(req.Name)
		if !ok {
			formatter.AddNotFound(b, req.ID)
			break
		}
		formatter.AddStop(b, req.ID, buses)
	case TypeMap:
		formatter.AddMap(b, req.ID, h.renderMap())
	case TypeRoute:
		formatter.AddRoute(b, h.resolve(req))
	default:
		return fmt.Errorf("stat request %d: %w: %q", req.ID, ErrUnknownRequestType, req.Type)
	}
	return b.Err()
}

// renderMap renders once; the catalogue does not change while serving
func (h *Handler) renderMap() string {
	if !h.rendered {
		h.svg = h.renderer.Render(h.cat)
		h.rendered = true
	}
	return h.svg
}

func (h *Handler) resolve(req StatRequest) routing.RouteResult {
	if h.routes == nil {
		return h.router.Resolve(req.From, req.To, req.ID)
	}
	key := routeKey{req.From, req.To}
	if cached, err := h.routes.Get(key); err == nil {
		res := cached.(routing.RouteResult)
		res.RequestID = req.ID
		return res
	}
	res := h.router.Resolve(req.From, req.To, req.ID)
	if err := h.routes.Set(key, res); err != nil {
		h.logger.Warn("failed to cache route", "from", req.From, "to", req.To, "error", err)
	}
	return res
}
