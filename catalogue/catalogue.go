package catalogue

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateBus is returned when a bus name is added twice
	ErrDuplicateBus = errors.New("duplicate bus")
	// ErrEmptyName is returned for stops or buses without a name
	ErrEmptyName = errors.New("empty name")
)

// Catalogue stores stops, buses and road distances
type Catalogue struct {
	stops     []*Stop
	stopIndex map[string]int
	buses     []*Bus
	busIndex  map[string]int
	distances map[stopPair]float64
}

// New creates an empty catalogue
func New() *Catalogue {
	return &Catalogue{
		stopIndex: map[string]int{},
		busIndex:  map[string]int{},
		distances: map[stopPair]float64{},
	}
}

// stopRef returns the stop with the given name, assigning the next id if the
// name has not been seen yet.
func (c *Catalogue) stopRef(name string) *Stop {
	if id, ok := c.stopIndex[name]; ok {
		return c.stops[id]
	}
	s := &Stop{ID: len(c.stops), Name: name, buses: map[string]struct{}{}}
	c.stops = append(c.stops, s)
	c.stopIndex[name] = s.ID
	return s
}

// AddStop creates the stop or sets the coordinates of an already referenced one
func (c *Catalogue) AddStop(name string, lat, lng float64) (*Stop, error) {
	if name == "" {
		return nil, fmt.Errorf("add stop: %w", ErrEmptyName)
	}
	s := c.stopRef(name)
	s.Coordinates = Coordinates{Lat: lat, Lng: lng}
	return s, nil
}

// AddStopRecord adds a stop together with the road distances to its neighbours.
// Neighbours are visited in name order so unseen names get ids deterministically.
func (c *Catalogue) AddStopRecord(name string, lat, lng float64, roadDistances map[string]float64) (*Stop, error) {
	s, err := c.AddStop(name, lat, lng)
	if err != nil {
		return nil, err
	}
	neighbours := make([]string, 0, len(roadDistances))
	for n := range roadDistances {
		neighbours = append(neighbours, n)
	}
	sort.Strings(neighbours)
	for _, n := range neighbours {
		if err := c.SetDistance(name, n, roadDistances[n]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddBus creates a bus line over the named stops. Every referenced stop is
// marked as served by the bus.
func (c *Catalogue) AddBus(name string, stops []string, looped bool) (*Bus, error) {
	if name == "" {
		return nil, fmt.Errorf("add bus: %w", ErrEmptyName)
	}
	if _, ok := c.busIndex[name]; ok {
		return nil, fmt.Errorf("add bus %q: %w", name, ErrDuplicateBus)
	}
	b := &Bus{ID: len(c.buses), Name: name, Looped: looped, Stops: make([]int, 0, len(stops))}
	for _, stopName := range stops {
		if stopName == "" {
			return nil, fmt.Errorf("add bus %q: stop: %w", name, ErrEmptyName)
		}
		s := c.stopRef(stopName)
		s.buses[name] = struct{}{}
		b.Stops = append(b.Stops, s.ID)
	}
	c.buses = append(c.buses, b)
	c.busIndex[name] = b.ID
	return b, nil
}

// SetDistance records the road distance from one stop to another
func (c *Catalogue) SetDistance(from, to string, meters float64) error {
	if from == "" || to == "" {
		return fmt.Errorf("set distance: %w", ErrEmptyName)
	}
	f := c.stopRef(from)
	t := c.stopRef(to)
	c.distances[stopPair{f.ID, t.ID}] = meters
	return nil
}

// Distance returns the road distance between two stops. Falls back to the
// reverse direction, then to zero.
func (c *Catalogue) Distance(from, to string) float64 {
	f, ok := c.stopIndex[from]
	if !ok {
		return 0
	}
	t, ok := c.stopIndex[to]
	if !ok {
		return 0
	}
	return c.DistanceByID(f, t)
}

// DistanceByID is Distance for stop ids
func (c *Catalogue) DistanceByID(from, to int) float64 {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d
	}
	// TODO: decide whether a missing distance should fail the build instead of counting as zero
	return 0
}

// Distances returns every recorded entry ordered by (from, to)
func (c *Catalogue) Distances() []Distance {
	out := make([]Distance, 0, len(c.distances))
	for p, d := range c.distances {
		out = append(out, Distance{From: p.from, To: p.to, Meters: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func (c *Catalogue) Stop(name string) (*Stop, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return nil, false
	}
	return c.stops[id], true
}

func (c *Catalogue) StopByID(id int) (*Stop, bool) {
	if id < 0 || id >= len(c.stops) {
		return nil, false
	}
	return c.stops[id], true
}

func (c *Catalogue) Bus(name string) (*Bus, bool) {
	id, ok := c.busIndex[name]
	if !ok {
		return nil, false
	}
	return c.buses[id], true
}

func (c *Catalogue) BusByID(id int) (*Bus, bool) {
	if id < 0 || id >= len(c.buses) {
		return nil, false
	}
	return c.buses[id], true
}

// StopCount is the number of stops with an assigned id
func (c *Catalogue) StopCount() int { return len(c.stops) }

func (c *Catalogue) BusCount() int { return len(c.buses) }

// StopsByID returns all stops in id order
func (c *Catalogue) StopsByID() []*Stop {
	out := make([]*Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

// BusesByID returns all buses in creation order
func (c *Catalogue) BusesByID() []*Bus {
	out := make([]*Bus, len(c.buses))
	copy(out, c.buses)
	return out
}

// Stops returns all stops sorted by name
func (c *Catalogue) Stops() []*Stop {
	out := c.StopsByID()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Buses returns all buses sorted by name
func (c *Catalogue) Buses() []*Bus {
	out := c.BusesByID()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BusesForStop returns the sorted names of the buses serving a stop. The bool
// is false when the stop is unknown.
func (c *Catalogue) BusesForStop(name string) ([]string, bool) {
	s, ok := c.Stop(name)
	if !ok {
		return nil, false
	}
	return s.BusNames(), true
}

// RouteStops resolves the full traversal of a bus to stops
func (c *Catalogue) RouteStops(b *Bus) []*Stop {
	ids := b.Route()
	out := make([]*Stop, len(ids))
	for i, id := range ids {
		out[i] = c.stops[id]
	}
	return out
}
