package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

var scenarioSettings = Settings{BusWaitTime: 6, BusVelocity: KmhToMetersPerMinute(40)}

// scenarioCatalogue is three stops on a line served by one out-and-back bus
func scenarioCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	for i, name := range []string{"A", "B", "C"} {
		_, err := c.AddStop(name, 0, float64(i))
		require.NoError(t, err)
	}
	require.NoError(t, c.SetDistance("A", "B", 1000))
	require.NoError(t, c.SetDistance("B", "C", 1000))
	_, err := c.AddBus("1", []string{"A", "B", "C"}, false)
	require.NoError(t, err)
	_, err = c.AddStop("Island", 5, 5)
	require.NoError(t, err)
	return c
}

func TestComposeSegments_Scenario(t *testing.T) {
	c := scenarioCatalogue(t)
	bus, _ := c.Bus("1")

	segs := ComposeSegments(c, bus, scenarioSettings)
	// round trip A B C B A has five stops
	require.Len(t, segs, 4+6)

	assert.Equal(t, 0, segs[0].From)
	assert.Equal(t, 1, segs[0].To)
	assert.Equal(t, 1, segs[0].Span)
	assert.InDelta(t, 7.5, segs[0].Weight, 1e-9)

	assert.Equal(t, 0, segs[1].From)
	assert.Equal(t, 2, segs[1].To)
	assert.Equal(t, 2, segs[1].Span)
	assert.InDelta(t, 9.0, segs[1].Weight, 1e-9)
	assert.Equal(t, "1", segs[1].Bus)
}

func TestComposeSegments_EdgeCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		c := catalogue.New()
		stops := make([]string, n)
		for i := range stops {
			stops[i] = string(rune('a' + i))
		}
		bus, err := c.AddBus("loop", stops, true)
		require.NoError(t, err)

		segs := ComposeSegments(c, bus, scenarioSettings)
		adjacent := 0
		for _, s := range segs {
			if s.Span == 1 {
				adjacent++
			}
		}
		if n < 2 {
			assert.Empty(t, segs)
			continue
		}
		assert.Equal(t, n-1, adjacent, "n=%d", n)
		assert.Equal(t, n-1+(n-1)*(n-2)/2, len(segs), "n=%d", n)
	}
}

func TestComposeSegments_WaitCountedOnce(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.SetDistance("a", "b", 100))
	require.NoError(t, c.SetDistance("b", "c", 200))
	require.NoError(t, c.SetDistance("c", "d", 300))
	bus, err := c.AddBus("x", []string{"a", "b", "c", "d"}, true)
	require.NoError(t, err)

	s := Settings{BusWaitTime: 4, BusVelocity: 100}
	segs := ComposeSegments(c, bus, s)
	last := segs[2]
	require.Equal(t, 3, last.Span)
	assert.InDelta(t, 4+1+2+3, last.Weight, 1e-9)
}

func TestBuild_InvalidSettings(t *testing.T) {
	c := scenarioCatalogue(t)
	_, err := Build(c, Settings{BusWaitTime: 6})
	assert.ErrorIs(t, err, ErrInvalidSettings)
	_, err = Build(c, Settings{BusWaitTime: -1, BusVelocity: 10})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestResolve(t *testing.T) {
	r, err := Build(scenarioCatalogue(t), scenarioSettings)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Graph().VertexCount())
	assert.Equal(t, 10, r.Graph().EdgeCount())

	res := r.Resolve("A", "C", 7)
	require.True(t, res.Found)
	assert.Equal(t, 7, res.RequestID)
	assert.InDelta(t, 9.0, res.TotalTime, 1e-9)
	require.Len(t, res.Items, 2)

	assert.Equal(t, ItemWait, res.Items[0].Type)
	assert.Equal(t, "A", res.Items[0].StopName)
	assert.Equal(t, 6.0, res.Items[0].Time)

	assert.Equal(t, ItemBus, res.Items[1].Type)
	assert.Equal(t, "1", res.Items[1].Bus)
	assert.Equal(t, 2, res.Items[1].SpanCount)
	assert.InDelta(t, 3.0, res.Items[1].Time, 1e-9)

	back := r.Resolve("C", "A", 8)
	require.True(t, back.Found)
	assert.InDelta(t, 9.0, back.TotalTime, 1e-9)
}

func TestResolve_NotFound(t *testing.T) {
	r, err := Build(scenarioCatalogue(t), scenarioSettings)
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to string
	}{
		{"unknown source", "Nowhere", "A"},
		{"unknown destination", "A", "Nowhere"},
		{"unreachable", "A", "Island"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.from, tt.to, 3)
			assert.False(t, res.Found)
			assert.Equal(t, 3, res.RequestID)
			assert.Empty(t, res.Items)
		})
	}
}

func TestResolve_SameStop(t *testing.T) {
	r, err := Build(scenarioCatalogue(t), scenarioSettings)
	require.NoError(t, err)

	res := r.Resolve("B", "B", 1)
	assert.True(t, res.Found)
	assert.Zero(t, res.TotalTime)
	assert.Empty(t, res.Items)
}

func TestResolve_Idempotent(t *testing.T) {
	r, err := Build(scenarioCatalogue(t), scenarioSettings)
	require.NoError(t, err)

	first := r.Resolve("A", "C", 1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Resolve("A", "C", 1))
	}
}

func TestResolve_Transfer(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.SetDistance("A", "B", 600))
	require.NoError(t, c.SetDistance("B", "C", 600))
	_, err := c.AddBus("red", []string{"A", "B"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("blue", []string{"B", "C"}, false)
	require.NoError(t, err)

	r, err := Build(c, Settings{BusWaitTime: 2, BusVelocity: 600})
	require.NoError(t, err)

	res := r.Resolve("A", "C", 1)
	require.True(t, res.Found)
	assert.InDelta(t, 6.0, res.TotalTime, 1e-9)
	require.Len(t, res.Items, 4)
	assert.Equal(t, "A", res.Items[0].StopName)
	assert.Equal(t, "red", res.Items[1].Bus)
	assert.Equal(t, "B", res.Items[2].StopName)
	assert.Equal(t, "blue", res.Items[3].Bus)
}

func TestBuild_EdgeIDsFollowBusNameOrder(t *testing.T) {
	c := catalogue.New()
	_, _ = c.AddBus("z", []string{"A", "B"}, true)
	_, _ = c.AddBus("a", []string{"B", "A"}, true)

	r, err := Build(c, scenarioSettings)
	require.NoError(t, err)
	info, ok := r.EdgeInfo(0)
	require.True(t, ok)
	assert.Equal(t, "a", info.Bus)
	_, ok = r.EdgeInfo(2)
	assert.False(t, ok)
}

func TestRestore(t *testing.T) {
	c := scenarioCatalogue(t)
	built, err := Build(c, scenarioSettings)
	require.NoError(t, err)

	restored, err := Restore(c, scenarioSettings, built.Graph(), built.Index().InternalData())
	require.NoError(t, err)
	for _, from := range []string{"A", "B", "C", "Island"} {
		for _, to := range []string{"A", "B", "C", "Island"} {
			assert.Equal(t, built.Resolve(from, to, 1), restored.Resolve(from, to, 1), "%s->%s", from, to)
		}
	}
}

func TestRestore_Mismatch(t *testing.T) {
	c := scenarioCatalogue(t)
	built, err := Build(c, scenarioSettings)
	require.NoError(t, err)

	t.Run("different settings", func(t *testing.T) {
		other := Settings{BusWaitTime: 7, BusVelocity: scenarioSettings.BusVelocity}
		_, err := Restore(c, other, built.Graph(), built.Index().InternalData())
		assert.ErrorIs(t, err, ErrIndexMismatch)
	})

	t.Run("missing edges", func(t *testing.T) {
		g := graph.NewDirectedWeightedGraph(c.StopCount())
		_, err := Restore(c, scenarioSettings, g, built.Index().InternalData())
		assert.ErrorIs(t, err, ErrIndexMismatch)
	})

	t.Run("wrong vertex count", func(t *testing.T) {
		g := graph.NewDirectedWeightedGraph(1)
		_, err := Restore(c, scenarioSettings, g, nil)
		assert.ErrorIs(t, err, ErrIndexMismatch)
	})

	t.Run("bad table", func(t *testing.T) {
		_, err := Restore(c, scenarioSettings, built.Graph(), nil)
		assert.ErrorIs(t, err, ErrIndexMismatch)
	})
}
