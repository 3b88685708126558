package snapshot

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

type rawHeader struct {
	version   uint64
	buildID   uuid.UUID
	createdAt int64
	stops     int
	buses     int
	edges     int
}

type rawStop struct {
	id       int
	name     string
	lat, lng float64
}

type rawBus struct {
	id     int
	name   string
	looped bool
	stops  []int
}

type rawGraph struct {
	vertices int
	edges    []graph.Edge
}

// contents is a parsed but not yet replayed snapshot
type contents struct {
	header     *rawHeader
	stops      []rawStop
	buses      []rawBus
	distances  []catalogue.Distance
	render     *renderer.Settings
	routing    *routing.Settings
	graph      *rawGraph
	routeTable [][]graph.RouteData
}

// Load decodes a snapshot produced by Save
func Load(data []byte) (*Snapshot, error) {
	c, err := parse(data)
	if err != nil {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	cat, err := c.replay()
	if err != nil {
		return nil, err
	}

	g := graph.NewDirectedWeightedGraph(c.graph.vertices)
	for i, e := range c.graph.edges {
		if _, err := g.AddEdge(e); err != nil {
			return nil, corrupt(fmt.Errorf("edge %d: %w", i, err))
		}
	}

	return &Snapshot{
		Header: Header{
			BuildID:   c.header.buildID,
			CreatedAt: time.Unix(0, c.header.createdAt).UTC(),
		},
		Catalogue:       cat,
		RenderSettings:  *c.render,
		RoutingSettings: *c.routing,
		Graph:           g,
		RouteData:       c.routeTable,
	}, nil
}

func parse(data []byte) (*contents, error) {
	c := &contents{}
	err := walk(data, func(f field) error {
		m, err := f.asMessage()
		if err != nil {
			return err
		}
		switch f.num {
		case fieldHeader:
			h, err := decodeHeader(m)
			c.header = &h
			return err
		case fieldStop:
			s, err := decodeStop(m)
			c.stops = append(c.stops, s)
			return err
		case fieldBus:
			b, err := decodeBus(m)
			c.buses = append(c.buses, b)
			return err
		case fieldDistance:
			d, err := decodeDistance(m)
			c.distances = append(c.distances, d)
			return err
		case fieldRenderSettings:
			s, err := decodeRenderSettings(m)
			c.render = &s
			return err
		case fieldRoutingSettings:
			s, err := decodeRoutingSettings(m)
			c.routing = &s
			return err
		case fieldGraph:
			g, err := decodeGraph(m)
			c.graph = &g
			return err
		case fieldRouteRow:
			row, err := decodeRouteRow(m)
			c.routeTable = append(c.routeTable, row)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// check rejects snapshots with missing sections or counts that disagree,
// which is what a truncated file looks like.
func (c *contents) check() error {
	switch {
	case c.header == nil:
		return corrupt(errors.New("missing header"))
	case c.render == nil:
		return corrupt(errors.New("missing render settings"))
	case c.routing == nil:
		return corrupt(errors.New("missing routing settings"))
	case c.graph == nil:
		return corrupt(errors.New("missing graph"))
	}
	if c.header.version != FormatVersion {
		return corrupt(fmt.Errorf("format version %d, want %d", c.header.version, FormatVersion))
	}
	if len(c.stops) != c.header.stops {
		return corrupt(fmt.Errorf("%d stops, header says %d", len(c.stops), c.header.stops))
	}
	if len(c.buses) != c.header.buses {
		return corrupt(fmt.Errorf("%d buses, header says %d", len(c.buses), c.header.buses))
	}
	if len(c.graph.edges) != c.header.edges {
		return corrupt(fmt.Errorf("%d edges, header says %d", len(c.graph.edges), c.header.edges))
	}
	if c.graph.vertices != len(c.stops) {
		return corrupt(fmt.Errorf("graph has %d vertices for %d stops", c.graph.vertices, len(c.stops)))
	}
	if len(c.routeTable) != c.graph.vertices {
		return corrupt(fmt.Errorf("route table has %d rows for %d vertices", len(c.routeTable), c.graph.vertices))
	}
	for i, row := range c.routeTable {
		if len(row) != c.graph.vertices {
			return corrupt(fmt.Errorf("route table row %d has %d cells for %d vertices", i, len(row), c.graph.vertices))
		}
	}
	return nil
}

// replay rebuilds the catalogue through its public API in stored order
func (c *contents) replay() (*catalogue.Catalogue, error) {
	cat := catalogue.New()
	names := make([]string, len(c.stops))
	for i, rs := range c.stops {
		s, err := cat.AddStop(rs.name, rs.lat, rs.lng)
		if err != nil {
			return nil, corrupt(fmt.Errorf("stop %d: %w", i, err))
		}
		if s.ID != rs.id {
			return nil, fmt.Errorf("%w: stop %q stored as %d, replayed as %d", ErrIDMismatch, rs.name, rs.id, s.ID)
		}
		names[i] = rs.name
	}
	stopName := func(id int) (string, error) {
		if id < 0 || id >= len(names) {
			return "", corrupt(fmt.Errorf("stop id %d out of range", id))
		}
		return names[id], nil
	}

	for _, rb := range c.buses {
		stops := make([]string, len(rb.stops))
		for i, id := range rb.stops {
			name, err := stopName(id)
			if err != nil {
				return nil, err
			}
			stops[i] = name
		}
		b, err := cat.AddBus(rb.name, stops, rb.looped)
		if err != nil {
			return nil, corrupt(err)
		}
		if b.ID != rb.id {
			return nil, fmt.Errorf("%w: bus %q stored as %d, replayed as %d", ErrIDMismatch, rb.name, rb.id, b.ID)
		}
	}

	for _, d := range c.distances {
		from, err := stopName(d.From)
		if err != nil {
			return nil, err
		}
		to, err := stopName(d.To)
		if err != nil {
			return nil, err
		}
		if err := cat.SetDistance(from, to, d.Meters); err != nil {
			return nil, corrupt(err)
		}
	}
	if cat.StopCount() != len(c.stops) {
		return nil, fmt.Errorf("%w: replay produced %d stops, stored %d", ErrIDMismatch, cat.StopCount(), len(c.stops))
	}
	return cat, nil
}

func decodeHeader(b []byte) (h rawHeader, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			h.version, err = f.asUint()
		case 2:
			var raw []byte
			if raw, err = f.asMessage(); err == nil {
				h.buildID, err = uuid.FromBytes(raw)
				if err != nil {
					err = corrupt(err)
				}
			}
		case 3:
			h.createdAt, err = f.asInt()
		case 4:
			h.stops, err = f.asIndex()
		case 5:
			h.buses, err = f.asIndex()
		case 6:
			h.edges, err = f.asIndex()
		}
		return err
	})
	return h, err
}

func decodeStop(b []byte) (s rawStop, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.id, err = f.asIndex()
		case 2:
			s.name, err = f.asString()
		case 3:
			s.lat, err = f.asFloat()
		case 4:
			s.lng, err = f.asFloat()
		}
		return err
	})
	return s, err
}

func decodeBus(b []byte) (r rawBus, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.id, err = f.asIndex()
		case 2:
			r.name, err = f.asString()
		case 3:
			r.looped, err = f.asBool()
		case 4:
			r.stops, err = f.asIndexes()
		}
		return err
	})
	return r, err
}

func decodeDistance(b []byte) (d catalogue.Distance, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			d.From, err = f.asIndex()
		case 2:
			d.To, err = f.asIndex()
		case 3:
			d.Meters, err = f.asFloat()
		}
		return err
	})
	return d, err
}

func decodeRoutingSettings(b []byte) (s routing.Settings, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			var v int64
			v, err = f.asInt()
			s.BusWaitTime = int(v)
		case 2:
			s.BusVelocity, err = f.asFloat()
		}
		return err
	})
	return s, err
}

func decodeGraph(b []byte) (g rawGraph, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			g.vertices, err = f.asIndex()
		case 2:
			var m []byte
			if m, err = f.asMessage(); err != nil {
				return err
			}
			var e graph.Edge
			e, err = decodeEdge(m)
			g.edges = append(g.edges, e)
		}
		return err
	})
	return g, err
}

func decodeEdge(b []byte) (e graph.Edge, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			e.From, err = f.asIndex()
		case 2:
			e.To, err = f.asIndex()
		case 3:
			e.Weight, err = f.asFloat()
		}
		return err
	})
	return e, err
}

func decodeRouteRow(b []byte) (row []graph.RouteData, err error) {
	row = []graph.RouteData{}
	err = walk(b, func(f field) (err error) {
		if f.num != 1 {
			return nil
		}
		var m []byte
		if m, err = f.asMessage(); err != nil {
			return err
		}
		var cell graph.RouteData
		cell, err = decodeRouteCell(m)
		row = append(row, cell)
		return err
	})
	return row, err
}

func decodeRouteCell(b []byte) (c graph.RouteData, err error) {
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			c.Reachable, err = f.asBool()
		case 2:
			c.Weight, err = f.asFloat()
		case 3:
			c.HasPrevEdge, err = f.asBool()
		case 4:
			c.PrevEdge, err = f.asIndex()
		}
		return err
	})
	return c, err
}

func decodeRenderSettings(b []byte) (s renderer.Settings, err error) {
	s.ColorPalette = []svg.Color{}
	err = walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.Width, err = f.asFloat()
		case 2:
			s.Height, err = f.asFloat()
		case 3:
			s.Padding, err = f.asFloat()
		case 4:
			s.LineWidth, err = f.asFloat()
		case 5:
			s.StopRadius, err = f.asFloat()
		case 6:
			var v int64
			v, err = f.asInt()
			s.BusLabelFontSize = int(v)
		case 7:
			s.BusLabelOffset, err = decodePointField(f)
		case 8:
			var v int64
			v, err = f.asInt()
			s.StopLabelFontSize = int(v)
		case 9:
			s.StopLabelOffset, err = decodePointField(f)
		case 10:
			s.UnderlayerColor, err = decodeColorField(f)
		case 11:
			s.UnderlayerWidth, err = f.asFloat()
		case 12:
			var c svg.Color
			c, err = decodeColorField(f)
			s.ColorPalette = append(s.ColorPalette, c)
		}
		return err
	})
	return s, err
}

func decodePointField(f field) (p svg.Point, err error) {
	m, err := f.asMessage()
	if err != nil {
		return p, err
	}
	err = walk(m, func(f field) (err error) {
		switch f.num {
		case 1:
			p.X, err = f.asFloat()
		case 2:
			p.Y, err = f.asFloat()
		}
		return err
	})
	return p, err
}

func decodeColorField(f field) (svg.Color, error) {
	m, err := f.asMessage()
	if err != nil {
		return svg.Color{}, err
	}
	var c svg.Color
	err = walk(m, func(f field) (err error) {
		switch f.num {
		case 1:
			var name string
			name, err = f.asString()
			c = svg.Named(name)
		case 2, 3:
			var cm []byte
			if cm, err = f.asMessage(); err != nil {
				return err
			}
			c, err = decodeChannels(cm, f.num == 3)
		}
		return err
	})
	return c, err
}

func decodeChannels(b []byte, withOpacity bool) (svg.Color, error) {
	var ch [3]uint8
	var opacity float64
	err := walk(b, func(f field) error {
		switch f.num {
		case 1, 2, 3:
			v, err := f.asUint()
			if err != nil {
				return err
			}
			if v > math.MaxUint8 {
				return corrupt(fmt.Errorf("color channel %d out of range", v))
			}
			ch[f.num-1] = uint8(v)
		case 4:
			v, err := f.asFloat()
			if err != nil {
				return err
			}
			opacity = v
		}
		return nil
	})
	if err != nil {
		return svg.Color{}, err
	}
	if withOpacity {
		return svg.RGBA(ch[0], ch[1], ch[2], opacity), nil
	}
	return svg.RGB(ch[0], ch[1], ch[2]), nil
}
