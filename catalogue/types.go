package catalogue

import "sort"

// Coordinates is a geographic point in degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is a named location served by zero or more buses
type Stop struct {
	ID          int
	Name        string
	Coordinates Coordinates

	buses map[string]struct{}
}

// BusNames returns the names of the buses serving the stop in sorted order
func (s *Stop) BusNames() []string {
	out := make([]string, 0, len(s.buses))
	for name := range s.buses {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Served reports whether at least one bus passes through the stop
func (s *Stop) Served() bool { return len(s.buses) > 0 }

// Bus is a bus line. Stops holds stop ids of one directional traversal.
type Bus struct {
	ID     int
	Name   string
	Looped bool
	Stops  []int
}

// Route returns the stop ids of the full traversal of the bus.
// For a non-looped bus this is A B C B A for Stops A B C.
func (b *Bus) Route() []int {
	if b.Looped || len(b.Stops) < 2 {
		out := make([]int, len(b.Stops))
		copy(out, b.Stops)
		return out
	}
	out := make([]int, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// FinalStop returns the id of the far terminal of a non-looped bus and false
// for looped or empty buses.
func (b *Bus) FinalStop() (int, bool) {
	if b.Looped || len(b.Stops) == 0 {
		return 0, false
	}
	return b.Stops[len(b.Stops)-1], true
}

// Distance is one directional road distance entry in meters
type Distance struct {
	From   int
	To     int
	Meters float64
}

type stopPair struct {
	from, to int
}
