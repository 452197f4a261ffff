// Package geo is the spherical geodesy kernel: great-circle distance, initial
// bearing, and forward projection on a spherical Earth.
package geo

import (
	"math"

	"github.com/velomapa/gpxscale/schema"
)

// EarthRadiusM is the spherical Earth radius used by all geodesic math.
const EarthRadiusM = 6371000.0

// Distance returns the great-circle distance between two points in meters,
// via the haversine formula. Symmetric, always >= 0.
func Distance(p1, p2 schema.Point) float64 {
	lat1 := radians(p1.Latitude)
	lat2 := radians(p2.Latitude)
	dLat := radians(p2.Latitude - p1.Latitude)
	dLon := radians(p2.Longitude - p1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// Bearing returns the initial bearing in radians (-pi, pi] of the great-circle
// path from p1 to p2. Unstable when p1 == p2; callers guard (a zero-length
// step is a no-op displacement).
func Bearing(p1, p2 schema.Point) float64 {
	lat1 := radians(p1.Latitude)
	lat2 := radians(p2.Latitude)
	dLon := radians(p2.Longitude - p1.Longitude)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Atan2(x, y)
}

// Destination projects a point the given distance (meters) along the given
// bearing (radians) and returns the resulting latitude and longitude in
// degrees. Inverse of Distance+Bearing up to floating precision.
func Destination(lat, lon, bearing, distanceM float64) (float64, float64) {
	lat1 := radians(lat)
	lon1 := radians(lon)
	dr := distanceM / EarthRadiusM

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(dr) +
		math.Cos(lat1)*math.Sin(dr)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(math.Sin(bearing)*math.Sin(dr)*math.Cos(lat1),
		math.Cos(dr)-math.Sin(lat1)*math.Sin(lat2))

	return degrees(lat2), degrees(lon2)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
