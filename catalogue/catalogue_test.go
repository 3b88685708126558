package catalogue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_IDsFollowFirstReference(t *testing.T) {
	c := New()

	_, err := c.AddBus("14", []string{"B", "C"}, false)
	require.NoError(t, err)
	require.NoError(t, c.SetDistance("D", "B", 500))
	_, err = c.AddStop("A", 1, 2)
	require.NoError(t, err)
	_, err = c.AddStop("B", 3, 4)
	require.NoError(t, err)

	want := map[string]int{"B": 0, "C": 1, "D": 2, "A": 3}
	for name, id := range want {
		s, ok := c.Stop(name)
		require.True(t, ok, name)
		assert.Equal(t, id, s.ID, name)
	}

	b, _ := c.Stop("B")
	assert.Equal(t, Coordinates{Lat: 3, Lng: 4}, b.Coordinates)
	assert.Equal(t, 4, c.StopCount())
}

func TestCatalogue_AddBusMarksStops(t *testing.T) {
	c := New()
	_, err := c.AddBus("750", []string{"A", "B"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("256", []string{"B", "C", "B"}, true)
	require.NoError(t, err)
	_, err = c.AddStop("Lonely", 0, 0)
	require.NoError(t, err)

	buses, ok := c.BusesForStop("B")
	require.True(t, ok)
	assert.Equal(t, []string{"256", "750"}, buses)

	buses, ok = c.BusesForStop("Lonely")
	require.True(t, ok)
	assert.Empty(t, buses)

	_, ok = c.BusesForStop("Nowhere")
	assert.False(t, ok)
}

func TestCatalogue_DuplicateBus(t *testing.T) {
	c := New()
	_, err := c.AddBus("1", []string{"A"}, true)
	require.NoError(t, err)
	_, err = c.AddBus("1", []string{"B"}, true)
	assert.True(t, errors.Is(err, ErrDuplicateBus))
	assert.Equal(t, 1, c.BusCount())
}

func TestCatalogue_EmptyNames(t *testing.T) {
	c := New()
	_, err := c.AddStop("", 0, 0)
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = c.AddBus("", nil, true)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, c.SetDistance("A", "", 1), ErrEmptyName)
}

func TestCatalogue_DistanceFallback(t *testing.T) {
	c := New()
	require.NoError(t, c.SetDistance("A", "B", 1000))
	require.NoError(t, c.SetDistance("B", "C", 300))
	require.NoError(t, c.SetDistance("C", "B", 400))

	tests := []struct {
		name     string
		from, to string
		want     float64
	}{
		{"forward", "A", "B", 1000},
		{"reverse falls back to forward", "B", "A", 1000},
		{"both directions set", "B", "C", 300},
		{"other direction", "C", "B", 400},
		{"no entry", "A", "C", 0},
		{"unknown stop", "A", "Z", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Distance(tt.from, tt.to))
		})
	}
}

func TestCatalogue_AddStopRecord(t *testing.T) {
	c := New()
	_, err := c.AddStopRecord("A", 55.6, 37.2, map[string]float64{"Z": 10, "M": 20})
	require.NoError(t, err)

	m, _ := c.Stop("M")
	z, _ := c.Stop("Z")
	assert.Equal(t, 1, m.ID, "neighbours get ids in name order")
	assert.Equal(t, 2, z.ID)
	assert.Equal(t, 20.0, c.Distance("M", "A"))

	assert.Equal(t, []Distance{
		{From: 0, To: 1, Meters: 20},
		{From: 0, To: 2, Meters: 10},
	}, c.Distances())
}

func TestBus_Route(t *testing.T) {
	tests := []struct {
		name string
		bus  Bus
		want []int
	}{
		{"non-looped", Bus{Stops: []int{0, 1, 2}}, []int{0, 1, 2, 1, 0}},
		{"looped", Bus{Looped: true, Stops: []int{0, 1, 2, 0}}, []int{0, 1, 2, 0}},
		{"single stop", Bus{Stops: []int{3}}, []int{3}},
		{"empty", Bus{}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bus.Route())
		})
	}
}

func TestCatalogue_OrderedListings(t *testing.T) {
	c := New()
	_, _ = c.AddBus("b", []string{"Y", "X"}, false)
	_, _ = c.AddBus("a", []string{"X"}, false)

	names := func(stops []*Stop) []string {
		out := []string{}
		for _, s := range stops {
			out = append(out, s.Name)
		}
		return out
	}
	assert.Equal(t, []string{"X", "Y"}, names(c.Stops()))
	assert.Equal(t, []string{"Y", "X"}, names(c.StopsByID()))

	buses := c.Buses()
	require.Len(t, buses, 2)
	assert.Equal(t, "a", buses[0].Name)
	assert.Equal(t, "b", c.BusesByID()[0].Name)
}

func TestCatalogue_BusStats(t *testing.T) {
	c := New()
	_, _ = c.AddStop("A", 55.611087, 37.20829)
	_, _ = c.AddStop("B", 55.595884, 37.209755)
	_, _ = c.AddStop("C", 55.632761, 37.333324)
	require.NoError(t, c.SetDistance("A", "B", 3900))
	require.NoError(t, c.SetDistance("B", "C", 9900))
	require.NoError(t, c.SetDistance("C", "B", 9500))
	_, err := c.AddBus("256", []string{"A", "B", "C"}, false)
	require.NoError(t, err)

	st, ok := c.BusStats("256")
	require.True(t, ok)
	assert.Equal(t, 5, st.StopCount)
	assert.Equal(t, 3, st.UniqueStopCount)
	assert.Equal(t, 3900.0+9900+9500+3900, st.RouteLength)
	assert.Greater(t, st.GeoLength, 0.0)
	assert.InDelta(t, st.RouteLength/st.GeoLength, st.Curvature, 1e-12)

	_, ok = c.BusStats("nope")
	assert.False(t, ok)
}

func TestCatalogue_BusStatsZeroGeometry(t *testing.T) {
	c := New()
	_, _ = c.AddBus("x", []string{"A", "A"}, true)
	st, ok := c.BusStats("x")
	require.True(t, ok)
	assert.Zero(t, st.Curvature)
	assert.Equal(t, 1, st.UniqueStopCount)
}

func TestGreatCircleDistance(t *testing.T) {
	assert.Zero(t, GreatCircleDistance(Coordinates{1, 1}, Coordinates{1, 1}))
	// one degree of latitude
	assert.InDelta(t, 111195, GreatCircleDistance(Coordinates{0, 0}, Coordinates{1, 0}), 1)
}
