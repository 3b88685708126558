package routing

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// EdgeInfo describes the ride behind one graph edge
type EdgeInfo struct {
	Bus  string
	Span int
}

// Segment is a ride on one bus between two stops of its traversal without
// getting off. Weight includes one boarding wait.
type Segment struct {
	From   int
	To     int
	Weight float64
	Bus    string
	Span   int
}

// ComposeSegments emits every segment of a bus over its full traversal.
// Segments come out ordered by start position, then by end position.
func ComposeSegments(cat *catalogue.Catalogue, bus *catalogue.Bus, settings Settings) []Segment {
	route := bus.Route()
	n := len(route)
	if n < 2 {
		return nil
	}
	wait := settings.wait()

	// adjacent[k] is the weight of riding from route[k-1] to route[k]
	adjacent := make([]float64, n)
	for k := 1; k < n; k++ {
		adjacent[k] = wait + cat.DistanceByID(route[k-1], route[k])/settings.BusVelocity
	}

	out := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i+1 < n; i++ {
		weight := adjacent[i+1]
		out = append(out, Segment{From: route[i], To: route[i+1], Weight: weight, Bus: bus.Name, Span: 1})
		for k := i + 2; k < n; k++ {
			weight = weight + adjacent[k] - wait
			out = append(out, Segment{From: route[i], To: route[k], Weight: weight, Bus: bus.Name, Span: k - i})
		}
	}
	return out
}

// composeAll runs ComposeSegments for every bus in name order
func composeAll(cat *catalogue.Catalogue, settings Settings) []Segment {
	var out []Segment
	for _, b := range cat.Buses() {
		out = append(out, ComposeSegments(cat, b, settings)...)
	}
	return out
}
