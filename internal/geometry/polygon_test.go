package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/geometry"
)

func squareRing(minLat, minLon, maxLat, maxLon float64) domain.Ring {
	return domain.Ring{
		{Lat: minLat, Lon: minLon},
		{Lat: minLat, Lon: maxLon},
		{Lat: maxLat, Lon: maxLon},
		{Lat: maxLat, Lon: minLon},
		{Lat: minLat, Lon: minLon},
	}
}

func TestPointInRing(t *testing.T) {
	square := squareRing(0, 0, 10, 10)

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"center of square", 5, 5, true},
		{"outside square", 15, 15, false},
		{"negative coordinates outside", -5, -5, false},
		{"on edge counts as inside", 0, 5, true},
		{"on vertex counts as inside", 10, 10, true},
		{"just outside the edge", 10.0001, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geometry.PointInRing(tt.lat, tt.lon, square))
		})
	}
}

func TestPointInPart(t *testing.T) {
	donut := domain.PolygonPart{
		Outer: squareRing(0, 0, 10, 10),
		Holes: []domain.Ring{squareRing(4, 4, 6, 6)},
	}

	t.Run("inside outer ring", func(t *testing.T) {
		assert.True(t, geometry.PointInPart(2, 2, donut))
	})

	t.Run("inside hole is outside the region", func(t *testing.T) {
		assert.False(t, geometry.PointInPart(5, 5, donut))
	})

	t.Run("outside outer ring", func(t *testing.T) {
		assert.False(t, geometry.PointInPart(20, 2, donut))
	})
}

func TestPointInBoundary(t *testing.T) {
	// Archipelago: two disjoint parts.
	boundary := []domain.PolygonPart{
		{Outer: squareRing(0, 0, 10, 10)},
		{Outer: squareRing(20, 20, 30, 30)},
	}

	assert.True(t, geometry.PointInBoundary(5, 5, boundary))
	assert.True(t, geometry.PointInBoundary(25, 25, boundary))
	assert.False(t, geometry.PointInBoundary(15, 15, boundary))
}
