package snapshot

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// FormatVersion is written into every header; other versions are rejected
const FormatVersion = 1

var (
	// ErrCorrupt is returned for truncated or unparseable snapshots
	ErrCorrupt = errors.New("corrupt snapshot")
	// ErrIDMismatch is returned when replaying the catalogue does not
	// reproduce the stored stop or bus ids
	ErrIDMismatch = errors.New("snapshot id mismatch")
)

// Header identifies one build run
type Header struct {
	BuildID   uuid.UUID
	CreatedAt time.Time
}

// Snapshot is everything the serve phase needs
type Snapshot struct {
	Header          Header
	Catalogue       *catalogue.Catalogue
	RenderSettings  renderer.Settings
	RoutingSettings routing.Settings
	Graph           *graph.DirectedWeightedGraph
	RouteData       [][]graph.RouteData
}

// New captures a built router with a fresh header
func New(cat *catalogue.Catalogue, render renderer.Settings, router *routing.Router) Snapshot {
	return Snapshot{
		Header: Header{
			BuildID:   uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Catalogue:       cat,
		RenderSettings:  render,
		RoutingSettings: router.Settings(),
		Graph:           router.Graph(),
		RouteData:       router.Index().InternalData(),
	}
}
