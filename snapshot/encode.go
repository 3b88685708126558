package snapshot

import (
	"errors"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Field numbers of the top-level message
const (
	fieldHeader          protowire.Number = 1
	fieldStop            protowire.Number = 2
	fieldBus             protowire.Number = 3
	fieldDistance        protowire.Number = 4
	fieldRenderSettings  protowire.Number = 5
	fieldRoutingSettings protowire.Number = 6
	fieldGraph           protowire.Number = 7
	fieldRouteRow        protowire.Number = 8
)

// Save encodes a snapshot
func Save(s Snapshot) ([]byte, error) {
	if s.Catalogue == nil || s.Graph == nil {
		return nil, errors.New("snapshot needs a catalogue and a graph")
	}
	cat := s.Catalogue
	var b []byte

	b = appendMessage(b, fieldHeader, func(m []byte) []byte {
		m = appendUint(m, 1, FormatVersion)
		m = protowire.AppendTag(m, 2, protowire.BytesType)
		m = protowire.AppendBytes(m, s.Header.BuildID[:])
		m = appendInt(m, 3, s.Header.CreatedAt.UnixNano())
		m = appendUint(m, 4, uint64(cat.StopCount()))
		m = appendUint(m, 5, uint64(cat.BusCount()))
		m = appendUint(m, 6, uint64(s.Graph.EdgeCount()))
		return m
	})

	for _, st := range cat.StopsByID() {
		b = appendMessage(b, fieldStop, func(m []byte) []byte {
			m = appendUint(m, 1, uint64(st.ID))
			m = appendString(m, 2, st.Name)
			m = appendFloat(m, 3, st.Coordinates.Lat)
			m = appendFloat(m, 4, st.Coordinates.Lng)
			return m
		})
	}

	for _, bus := range cat.BusesByID() {
		b = appendMessage(b, fieldBus, func(m []byte) []byte {
			m = appendUint(m, 1, uint64(bus.ID))
			m = appendString(m, 2, bus.Name)
			m = appendBool(m, 3, bus.Looped)
			var packed []byte
			for _, id := range bus.Stops {
				packed = protowire.AppendVarint(packed, uint64(id))
			}
			m = protowire.AppendTag(m, 4, protowire.BytesType)
			m = protowire.AppendBytes(m, packed)
			return m
		})
	}

	for _, d := range cat.Distances() {
		b = appendMessage(b, fieldDistance, func(m []byte) []byte {
			m = appendUint(m, 1, uint64(d.From))
			m = appendUint(m, 2, uint64(d.To))
			m = appendFloat(m, 3, d.Meters)
			return m
		})
	}

	b = appendMessage(b, fieldRenderSettings, func(m []byte) []byte {
		return appendRenderSettings(m, s.RenderSettings)
	})

	b = appendMessage(b, fieldRoutingSettings, func(m []byte) []byte {
		m = appendInt(m, 1, int64(s.RoutingSettings.BusWaitTime))
		m = appendFloat(m, 2, s.RoutingSettings.BusVelocity)
		return m
	})

	b = appendMessage(b, fieldGraph, func(m []byte) []byte {
		m = appendUint(m, 1, uint64(s.Graph.VertexCount()))
		for _, e := range s.Graph.Edges() {
			m = appendMessage(m, 2, func(em []byte) []byte {
				em = appendUint(em, 1, uint64(e.From))
				em = appendUint(em, 2, uint64(e.To))
				em = appendFloat(em, 3, e.Weight)
				return em
			})
		}
		return m
	})

	for _, row := range s.RouteData {
		b = appendMessage(b, fieldRouteRow, func(m []byte) []byte {
			for _, cell := range row {
				m = appendMessage(m, 1, func(cm []byte) []byte {
					return appendRouteCell(cm, cell)
				})
			}
			return m
		})
	}
	return b, nil
}

func appendRouteCell(b []byte, c graph.RouteData) []byte {
	b = appendBool(b, 1, c.Reachable)
	if !c.Reachable {
		return b
	}
	b = appendFloat(b, 2, c.Weight)
	b = appendBool(b, 3, c.HasPrevEdge)
	if c.HasPrevEdge {
		b = appendUint(b, 4, uint64(c.PrevEdge))
	}
	return b
}

func appendRenderSettings(b []byte, s renderer.Settings) []byte {
	b = appendFloat(b, 1, s.Width)
	b = appendFloat(b, 2, s.Height)
	b = appendFloat(b, 3, s.Padding)
	b = appendFloat(b, 4, s.LineWidth)
	b = appendFloat(b, 5, s.StopRadius)
	b = appendInt(b, 6, int64(s.BusLabelFontSize))
	b = appendMessage(b, 7, func(m []byte) []byte { return appendPoint(m, s.BusLabelOffset) })
	b = appendInt(b, 8, int64(s.StopLabelFontSize))
	b = appendMessage(b, 9, func(m []byte) []byte { return appendPoint(m, s.StopLabelOffset) })
	b = appendMessage(b, 10, func(m []byte) []byte { return appendColor(m, s.UnderlayerColor) })
	b = appendFloat(b, 11, s.UnderlayerWidth)
	for _, c := range s.ColorPalette {
		b = appendMessage(b, 12, func(m []byte) []byte { return appendColor(m, c) })
	}
	return b
}

func appendPoint(b []byte, p svg.Point) []byte {
	b = appendFloat(b, 1, p.X)
	return appendFloat(b, 2, p.Y)
}

// appendColor writes one of name (1), rgb (2) or rgba (3). An unset color
// is an empty message.
func appendColor(b []byte, c svg.Color) []byte {
	if name, ok := c.Name(); ok {
		return appendString(b, 1, name)
	}
	r, g, bl, ok := c.RGB()
	if !ok {
		return b
	}
	channels := func(m []byte) []byte {
		m = appendUint(m, 1, uint64(r))
		m = appendUint(m, 2, uint64(g))
		m = appendUint(m, 3, uint64(bl))
		return m
	}
	if op, ok := c.Opacity(); ok {
		return appendMessage(b, 3, func(m []byte) []byte {
			return appendFloat(channels(m), 4, op)
		})
	}
	return appendMessage(b, 2, channels)
}

func appendMessage(b []byte, num protowire.Number, fill func([]byte) []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, fill(nil))
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendFloat(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
