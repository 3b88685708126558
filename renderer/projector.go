package renderer

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// SphereProjector maps coordinates onto a flat canvas. Longitude grows to the
// right and latitude grows upwards.
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector fits the bounding box of points into a width x height
// canvas. The zoom is the smaller of the horizontal and vertical ratios; a
// degenerate axis is ignored, and with no extent at all every point lands on
// the padding corner.
func NewSphereProjector(points []catalogue.Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}
	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		minLng = math.Min(minLng, pt.Lng)
		maxLng = math.Max(maxLng, pt.Lng)
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
	}
	p.minLng, p.maxLat = minLng, maxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

// Project converts coordinates to a canvas point
func (p SphereProjector) Project(c catalogue.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
