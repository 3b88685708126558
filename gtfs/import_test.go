package gtfs

import (
	"math"
	"testing"

	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
)

func ptr(v float64) *float64 { return &v }

func testFeed() *gtfs.Static {
	stops := []gtfs.Stop{
		{Id: "s1", Name: "Central", Latitude: ptr(55.0), Longitude: ptr(37.0)},
		{Id: "s2", Name: "Market", Latitude: ptr(55.01), Longitude: ptr(37.0)},
		{Id: "s3", Name: "Harbour", Latitude: ptr(55.02), Longitude: ptr(37.01)},
		{Id: "station", Name: "Central Station"},
		{Id: "s4", Name: "Market", Latitude: ptr(55.03), Longitude: ptr(37.02)},
	}
	routes := []gtfs.Route{
		{Id: "r1", ShortName: "7"},
		{Id: "r2", ShortName: ""},
		{Id: "r3", ShortName: "empty"},
	}
	st := func(stop int, seq int) gtfs.ScheduledStopTime {
		return gtfs.ScheduledStopTime{Stop: &stops[stop], StopSequence: seq}
	}
	trips := []gtfs.ScheduledTrip{
		// short trip of route 7
		{ID: "t1", Route: &routes[0], StopTimes: []gtfs.ScheduledStopTime{st(0, 1), st(1, 2)}},
		// longest trip of route 7, listed out of order and through the station
		{ID: "t2", Route: &routes[0], StopTimes: []gtfs.ScheduledStopTime{st(2, 3), st(0, 1), st(3, 2), st(1, 2)}},
		// loop on route r2 with a repeated stop
		{ID: "t3", Route: &routes[1], StopTimes: []gtfs.ScheduledStopTime{st(0, 1), st(4, 2), st(4, 3), st(0, 4)}},
		{ID: "t4", Route: &routes[2], StopTimes: []gtfs.ScheduledStopTime{st(3, 1)}},
	}
	return &gtfs.Static{Stops: stops, Routes: routes, Trips: trips}
}

func TestFromStatic(t *testing.T) {
	reqs := FromStatic(testFeed(), Options{})

	var stops, buses []requests.BaseRequest
	for _, r := range reqs {
		switch r.Type {
		case requests.TypeStop:
			stops = append(stops, r)
		case requests.TypeBus:
			buses = append(buses, r)
		}
	}

	names := []string{}
	for _, s := range stops {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Central", "Market [s2]", "Harbour", "Market [s4]"}, names)

	require.Len(t, buses, 2)
	assert.Equal(t, "7", buses[0].Name)
	assert.Equal(t, []string{"Central", "Market [s2]", "Harbour"}, buses[0].Stops)
	assert.False(t, buses[0].IsRoundtrip)

	assert.Equal(t, "r2", buses[1].Name)
	assert.Equal(t, []string{"Central", "Market [s4]", "Central"}, buses[1].Stops)
	assert.True(t, buses[1].IsRoundtrip)
}

func TestFromStatic_RoadDistances(t *testing.T) {
	reqs := FromStatic(testFeed(), Options{})
	central := reqs[0]
	require.Equal(t, "Central", central.Name)

	want := math.Round(catalogue.GreatCircleDistance(
		catalogue.Coordinates{Lat: 55.0, Lng: 37.0},
		catalogue.Coordinates{Lat: 55.01, Lng: 37.0},
	))
	assert.Equal(t, want, central.RoadDistances["Market [s2]"])
	assert.Contains(t, central.RoadDistances, "Market [s4]")
	assert.Equal(t, float64(int64(want)), want, "distances are whole meters")
}

func TestFromStatic_MaxRoutes(t *testing.T) {
	reqs := FromStatic(testFeed(), Options{MaxRoutes: 1})
	var buses []string
	for _, r := range reqs {
		if r.Type == requests.TypeBus {
			buses = append(buses, r.Name)
		}
	}
	assert.Equal(t, []string{"7"}, buses)

	// stops of dropped routes carry no distances
	for _, r := range reqs {
		if r.Name == "Market [s4]" {
			assert.Empty(t, r.RoadDistances)
		}
	}
}

func TestFromStatic_AppliesToCatalogue(t *testing.T) {
	reqs := FromStatic(testFeed(), Options{})
	require.NoError(t, requests.ValidateBaseRequests(reqs))

	cat := catalogue.New()
	require.NoError(t, requests.Apply(cat, reqs))
	assert.Equal(t, 4, cat.StopCount())
	assert.Equal(t, 2, cat.BusCount())

	st, ok := cat.BusStats("7")
	require.True(t, ok)
	assert.Greater(t, st.RouteLength, 0.0)
	assert.InDelta(t, 1.0, st.Curvature, 0.01)
}

func TestImport_InvalidZip(t *testing.T) {
	_, err := Import([]byte("not a zip"), Options{})
	assert.Error(t, err)
}
