package renderer

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const labelFont = "Verdana"

// MapRenderer draws catalogues with fixed settings
type MapRenderer struct {
	settings Settings
}

func NewMapRenderer(settings Settings) *MapRenderer {
	return &MapRenderer{settings: settings}
}

func (m *MapRenderer) Settings() Settings { return m.settings }

// Render returns the SVG text of the map
func (m *MapRenderer) Render(cat *catalogue.Catalogue) string {
	return m.Document(cat).String()
}

// Document builds the SVG document of the map
func (m *MapRenderer) Document(cat *catalogue.Catalogue) *svg.Document {
	buses := drawableBuses(cat)
	stops := servedStops(cat)

	var points []catalogue.Coordinates
	for _, b := range buses {
		for _, s := range cat.RouteStops(b) {
			points = append(points, s.Coordinates)
		}
	}
	proj := NewSphereProjector(points, m.settings.Width, m.settings.Height, m.settings.Padding)

	doc := &svg.Document{}
	m.drawRouteLines(doc, cat, buses, proj)
	m.drawBusLabels(doc, cat, buses, proj)
	m.drawStopCircles(doc, stops, proj)
	m.drawStopLabels(doc, stops, proj)
	return doc
}

func drawableBuses(cat *catalogue.Catalogue) []*catalogue.Bus {
	var out []*catalogue.Bus
	for _, b := range cat.Buses() {
		if len(b.Stops) > 0 {
			out = append(out, b)
		}
	}
	return out
}

func servedStops(cat *catalogue.Catalogue) []*catalogue.Stop {
	var out []*catalogue.Stop
	for _, s := range cat.Stops() {
		if s.Served() {
			out = append(out, s)
		}
	}
	return out
}

func (m *MapRenderer) drawRouteLines(doc *svg.Document, cat *catalogue.Catalogue, buses []*catalogue.Bus, proj SphereProjector) {
	for i, b := range buses {
		line := svg.Polyline{
			PathProps: svg.PathProps{
				Fill:        svg.NoneColor,
				Stroke:      m.settings.paletteColor(i),
				StrokeWidth: m.settings.LineWidth,
				LineCap:     svg.LineCapRound,
				LineJoin:    svg.LineJoinRound,
			},
		}
		for _, s := range cat.RouteStops(b) {
			line.Points = append(line.Points, proj.Project(s.Coordinates))
		}
		doc.Add(line)
	}
}

func (m *MapRenderer) drawBusLabels(doc *svg.Document, cat *catalogue.Catalogue, buses []*catalogue.Bus, proj SphereProjector) {
	for i, b := range buses {
		terminals := []int{b.Stops[0]}
		if last, ok := b.FinalStop(); ok && last != b.Stops[0] {
			terminals = append(terminals, last)
		}
		for _, id := range terminals {
			stop, _ := cat.StopByID(id)
			text := svg.Text{
				Position:   proj.Project(stop.Coordinates),
				Offset:     m.settings.BusLabelOffset,
				FontSize:   uint32(m.settings.BusLabelFontSize),
				FontFamily: labelFont,
				FontWeight: "bold",
				Data:       b.Name,
			}
			m.addLabel(doc, text, m.settings.paletteColor(i))
		}
	}
}

func (m *MapRenderer) drawStopCircles(doc *svg.Document, stops []*catalogue.Stop, proj SphereProjector) {
	for _, s := range stops {
		doc.Add(svg.Circle{
			Center:    proj.Project(s.Coordinates),
			Radius:    m.settings.StopRadius,
			PathProps: svg.PathProps{Fill: svg.Named("white")},
		})
	}
}

func (m *MapRenderer) drawStopLabels(doc *svg.Document, stops []*catalogue.Stop, proj SphereProjector) {
	for _, s := range stops {
		text := svg.Text{
			Position:   proj.Project(s.Coordinates),
			Offset:     m.settings.StopLabelOffset,
			FontSize:   uint32(m.settings.StopLabelFontSize),
			FontFamily: labelFont,
			Data:       s.Name,
		}
		m.addLabel(doc, text, svg.Named("black"))
	}
}

// addLabel adds the underlayer copy of text followed by the text itself
func (m *MapRenderer) addLabel(doc *svg.Document, text svg.Text, fill svg.Color) {
	under := text
	under.PathProps = svg.PathProps{
		Fill:        m.settings.UnderlayerColor,
		Stroke:      m.settings.UnderlayerColor,
		StrokeWidth: m.settings.UnderlayerWidth,
		LineCap:     svg.LineCapRound,
		LineJoin:    svg.LineJoinRound,
	}
	doc.Add(under)

	text.PathProps = svg.PathProps{Fill: fill}
	doc.Add(text)
}
