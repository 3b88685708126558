// Package renderer draws the bus network as an SVG map.
//
// Layers are drawn in a fixed order: route lines, bus name labels, stop
// circles, stop name labels. Buses and stops are visited in name order and
// only stops served by at least one bus appear on the map. Coordinates are
// projected onto the canvas with SphereProjector, which scales the bounding
// box of all drawn stops to fit the canvas minus padding.
package renderer
