package catalogue

import "math"

const earthRadiusM = 6371000.0

// GreatCircleDistance returns the haversine distance between two points in meters
func GreatCircleDistance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180
	la1 := from.Lat * math.Pi / 180
	la2 := to.Lat * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}
