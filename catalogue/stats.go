package catalogue

// BusStats summarises one bus line over its full traversal
type BusStats struct {
	// RouteLength is the sum of road distances in meters
	RouteLength float64
	// GeoLength is the sum of great-circle distances in meters
	GeoLength float64
	// Curvature is RouteLength / GeoLength, zero when GeoLength is zero
	Curvature       float64
	StopCount       int
	UniqueStopCount int
}

// BusStats computes statistics for the named bus
func (c *Catalogue) BusStats(name string) (BusStats, bool) {
	b, ok := c.Bus(name)
	if !ok {
		return BusStats{}, false
	}
	route := b.Route()
	st := BusStats{StopCount: len(route)}

	unique := make(map[int]struct{}, len(b.Stops))
	for _, id := range route {
		unique[id] = struct{}{}
	}
	st.UniqueStopCount = len(unique)

	for i := 0; i+1 < len(route); i++ {
		st.RouteLength += c.DistanceByID(route[i], route[i+1])
		st.GeoLength += GreatCircleDistance(c.stops[route[i]].Coordinates, c.stops[route[i+1]].Coordinates)
	}
	if st.GeoLength > 0 {
		st.Curvature = st.RouteLength / st.GeoLength
	}
	return st, true
}
