package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Properties(t *testing.T) {
	points := []Point{
		{Lat: 20.59, Lng: 78.96},
		{Lat: 28.6139, Lng: 77.2090},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 179.9},
		{Lat: 0, Lng: -179.9},
		{Lat: 89.9, Lng: 10},
	}
	for _, a := range points {
		assert.Equal(t, 0.0, DistanceMeters(a.Lat, a.Lng, a.Lat, a.Lng))
		for _, b := range points {
			ab := DistanceMeters(a.Lat, a.Lng, b.Lat, b.Lng)
			ba := DistanceMeters(b.Lat, b.Lng, a.Lat, a.Lng)
			assert.InDelta(t, ab, ba, 1e-6, "distance must be symmetric for %v %v", a, b)
			assert.False(t, math.IsNaN(ab))
		}
	}
}

func TestDistanceMeters_KnownValues(t *testing.T) {
	// one degree of longitude along the equator
	assert.InDelta(t, 111_195, DistanceMeters(0, 0, 0, 1), 1)
	// crossing the antimeridian is short, not half the globe
	assert.InDelta(t, 22_239, DistanceMeters(0, 179.9, 0, -179.9), 1)
	// antipodal points
	assert.InDelta(t, math.Pi*EarthRadiusMeters, DistanceMeters(0, 0, 0, 180), 1)
}

func TestDistanceBetween_MissingPoint(t *testing.T) {
	p := &Point{Lat: 1, Lng: 1}
	assert.True(t, math.IsInf(DistanceBetween(nil, p), 1))
	assert.True(t, math.IsInf(DistanceBetween(p, nil), 1))
	assert.False(t, Within(p, nil, math.MaxFloat64))
}

func TestPointFrom(t *testing.T) {
	lat, lng := 1.5, 2.5
	assert.Nil(t, PointFrom(nil, &lng))
	assert.Nil(t, PointFrom(&lat, nil))
	assert.Equal(t, &Point{Lat: 1.5, Lng: 2.5}, PointFrom(&lat, &lng))
}

func TestWithin_RadiusBoundary(t *testing.T) {
	center := &Point{Lat: 20.59, Lng: 78.96}
	near := &Point{Lat: center.Lat + 49_900/metersPerDegreeLat, Lng: center.Lng}
	far := &Point{Lat: center.Lat + 50_100/metersPerDegreeLat, Lng: center.Lng}

	radius := KmToMeters(50)
	assert.True(t, Within(center, near, radius))
	assert.False(t, Within(center, far, radius))
}

func TestLatitudeBounds(t *testing.T) {
	minLat, maxLat := LatitudeBounds(Point{Lat: 20, Lng: 0}, KmToMeters(111.195))
	assert.InDelta(t, 19, minLat, 0.001)
	assert.InDelta(t, 21, maxLat, 0.001)

	minLat, maxLat = LatitudeBounds(Point{Lat: 89.5, Lng: 0}, KmToMeters(500))
	assert.Less(t, minLat, 89.5)
	assert.Equal(t, 90.0, maxLat)
}

func TestUnitConversion(t *testing.T) {
	assert.Equal(t, 2500.0, KmToMeters(2.5))
	assert.Equal(t, 2.5, MetersToKm(2500))
}
