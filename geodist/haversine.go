package geodist

import (
	"math"

	"github.com/paulmach/orb"
)

// HaversineMeters returns the great-circle distance between a and b in
// meters, on a sphere of radius 6371 km.
func HaversineMeters(a, b orb.Point) float64 {
	const earthRadiusKM = 6371.0
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180
	la1 := a.Lat() * math.Pi / 180
	la2 := b.Lat() * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c * 1000
}
