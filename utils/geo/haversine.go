// Package geo holds the great-circle math used for proximity search.
// All distances are in meters; callers convert at the HTTP boundary.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the Haversine formula.
const EarthRadiusMeters = 6_371_000.0

const metersPerDegreeLat = math.Pi * EarthRadiusMeters / 180

type Point struct {
	Lat float64
	Lng float64
}

// PointFrom returns nil unless both coordinates are present.
func PointFrom(lat, lng *float64) *Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &Point{Lat: *lat, Lng: *lng}
}

// DistanceMeters is the Haversine great-circle distance between two coordinates.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceBetween returns +Inf when either point is missing, so it never passes a radius filter.
func DistanceBetween(a, b *Point) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	return DistanceMeters(a.Lat, a.Lng, b.Lat, b.Lng)
}

// Within reports whether b lies inside the circle of radiusMeters around a.
func Within(a, b *Point, radiusMeters float64) bool {
	return DistanceBetween(a, b) <= radiusMeters
}

// LatitudeBounds returns the latitude band that fully contains the search circle.
// Longitude is left unbounded to stay correct across the antimeridian.
func LatitudeBounds(center Point, radiusMeters float64) (minLat, maxLat float64) {
	delta := radiusMeters / metersPerDegreeLat
	return math.Max(-90, center.Lat-delta), math.Min(90, center.Lat+delta)
}

func KmToMeters(km float64) float64 {
	return km * 1000
}

func MetersToKm(m float64) float64 {
	return m / 1000
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
