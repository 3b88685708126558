package gtfs

import (
	"fmt"
	"math"
	"sort"

	"github.com/jamespfennell/gtfs"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
)

// Options limit what Import emits
type Options struct {
	// MaxRoutes keeps the first routes in name order. Zero keeps all.
	MaxRoutes int
}

// Import parses a GTFS static zip and converts it with FromStatic
func Import(zipBytes []byte, opts Options) ([]requests.BaseRequest, error) {
	static, err := gtfs.ParseStatic(zipBytes, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return FromStatic(static, opts), nil
}

type importedStop struct {
	name   string
	coords catalogue.Coordinates
}

// FromStatic converts parsed GTFS data. Stop records come first in feed
// order, then bus records in name order.
func FromStatic(static *gtfs.Static, opts Options) []requests.BaseRequest {
	stops, byID := importStops(static.Stops)

	type busLine struct {
		name  string
		stops []string
	}
	var lines []busLine
	for _, r := range uniqueRouteNames(static.Routes) {
		seq := stopSequence(longestTrip(static.Trips, r.id), byID)
		if len(seq) < 2 {
			continue
		}
		lines = append(lines, busLine{name: r.name, stops: seq})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].name < lines[j].name })
	if opts.MaxRoutes > 0 && len(lines) > opts.MaxRoutes {
		lines = lines[:opts.MaxRoutes]
	}

	// road distances of every consecutive pair on the kept lines
	coords := map[string]catalogue.Coordinates{}
	for _, s := range stops {
		coords[s.name] = s.coords
	}
	distances := map[string]map[string]float64{}
	for _, l := range lines {
		for i := 0; i+1 < len(l.stops); i++ {
			from, to := l.stops[i], l.stops[i+1]
			if distances[from] == nil {
				distances[from] = map[string]float64{}
			}
			if _, ok := distances[from][to]; !ok {
				distances[from][to] = math.Round(catalogue.GreatCircleDistance(coords[from], coords[to]))
			}
		}
	}

	out := make([]requests.BaseRequest, 0, len(stops)+len(lines))
	for _, s := range stops {
		out = append(out, requests.BaseRequest{
			Type:          requests.TypeStop,
			Name:          s.name,
			Latitude:      s.coords.Lat,
			Longitude:     s.coords.Lng,
			RoadDistances: distances[s.name],
		})
	}
	for _, l := range lines {
		looped := l.stops[0] == l.stops[len(l.stops)-1]
		out = append(out, requests.BaseRequest{
			Type:        requests.TypeBus,
			Name:        l.name,
			Stops:       l.stops,
			IsRoundtrip: looped,
		})
	}
	return out
}

// importStops returns the stops with coordinates in feed order and keyed by
// GTFS id
func importStops(stops []gtfs.Stop) ([]importedStop, map[string]importedStop) {
	counts := map[string]int{}
	for _, s := range stops {
		if s.Latitude != nil && s.Longitude != nil {
			counts[s.Name]++
		}
	}
	var ordered []importedStop
	byID := make(map[string]importedStop, len(stops))
	for _, s := range stops {
		if s.Latitude == nil || s.Longitude == nil {
			continue
		}
		name := s.Name
		if name == "" || counts[s.Name] > 1 {
			name = disambiguate(s.Name, s.Id)
		}
		is := importedStop{name: name, coords: catalogue.Coordinates{Lat: *s.Latitude, Lng: *s.Longitude}}
		ordered = append(ordered, is)
		byID[s.Id] = is
	}
	return ordered, byID
}

type namedRoute struct {
	id   string
	name string
}

func uniqueRouteNames(routes []gtfs.Route) []namedRoute {
	label := func(r gtfs.Route) string {
		if r.ShortName != "" {
			return r.ShortName
		}
		return r.Id
	}
	counts := map[string]int{}
	for _, r := range routes {
		counts[label(r)]++
	}
	out := make([]namedRoute, 0, len(routes))
	for _, r := range routes {
		name := label(r)
		if counts[name] > 1 {
			name = disambiguate(name, r.Id)
		}
		out = append(out, namedRoute{id: r.Id, name: name})
	}
	return out
}

func disambiguate(name, id string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s [%s]", name, id)
}

// longestTrip returns the trip of a route with the most stop times. Ties go
// to the smaller trip id.
func longestTrip(trips []gtfs.ScheduledTrip, routeID string) *gtfs.ScheduledTrip {
	var best *gtfs.ScheduledTrip
	for i := range trips {
		t := &trips[i]
		if t.Route == nil || t.Route.Id != routeID {
			continue
		}
		if best == nil || len(t.StopTimes) > len(best.StopTimes) ||
			(len(t.StopTimes) == len(best.StopTimes) && t.ID < best.ID) {
			best = t
		}
	}
	return best
}

// stopSequence lists the catalogue names of a trip's stops in stop_sequence
// order. Unknown stops and immediate repeats are dropped.
func stopSequence(trip *gtfs.ScheduledTrip, stops map[string]importedStop) []string {
	if trip == nil {
		return nil
	}
	times := make([]gtfs.ScheduledStopTime, len(trip.StopTimes))
	copy(times, trip.StopTimes)
	sort.SliceStable(times, func(i, j int) bool { return times[i].StopSequence < times[j].StopSequence })

	var out []string
	for _, st := range times {
		if st.Stop == nil {
			continue
		}
		s, ok := stops[st.Stop.Id]
		if !ok {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == s.name {
			continue
		}
		out = append(out, s.name)
	}
	return out
}
