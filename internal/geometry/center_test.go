package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/geometry"
	"github.com/geoapi-pt/internal/pkg/errors"
)

func addrPoints(coords ...[2]float64) []domain.AddressPoint {
	pts := make([]domain.AddressPoint, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, domain.AddressPoint{Lat: c[0], Lon: c[1], CP4: "3150", CP3: "012"})
	}
	return pts
}

func TestCenter(t *testing.T) {
	t.Run("empty set returns ErrInsufficientData", func(t *testing.T) {
		_, err := geometry.Center(nil)
		assert.ErrorIs(t, err, errors.ErrInsufficientData)
	})

	t.Run("single point is its own center", func(t *testing.T) {
		c, err := geometry.Center(addrPoints([2]float64{40.0, -8.0}))
		require.NoError(t, err)
		assert.Equal(t, domain.Point{Lat: 40.0, Lon: -8.0}, c)
	})

	t.Run("mean of three points", func(t *testing.T) {
		pts := addrPoints(
			[2]float64{40.0, -8.0},
			[2]float64{40.1, -8.0},
			[2]float64{40.05, -8.1},
		)
		c, err := geometry.Center(pts)
		require.NoError(t, err)
		assert.InDelta(t, 40.05, c.Lat, 1e-9)
		assert.InDelta(t, -8.0333333333, c.Lon, 1e-9)
	})

	t.Run("center lies within the bounding box", func(t *testing.T) {
		pts := addrPoints(
			[2]float64{38.7, -9.1},
			[2]float64{41.1, -8.6},
			[2]float64{37.0, -7.9},
			[2]float64{40.2, -8.4},
		)
		c, err := geometry.Center(pts)
		require.NoError(t, err)

		box := domain.NewBoundingBox(pts[0].Lat, pts[0].Lon)
		for _, p := range pts[1:] {
			box = box.Extend(p.Lat, p.Lon)
		}
		assert.True(t, box.Contains(c.Lat, c.Lon))
	})
}

func TestCenterOfMass(t *testing.T) {
	t.Run("empty set returns ErrInsufficientData", func(t *testing.T) {
		_, err := geometry.CenterOfMass(nil, nil)
		assert.ErrorIs(t, err, errors.ErrInsufficientData)
	})

	t.Run("equals center when all points are distinct", func(t *testing.T) {
		pts := addrPoints(
			[2]float64{40.0, -8.0},
			[2]float64{40.1, -8.0},
			[2]float64{40.05, -8.1},
		)
		c, err := geometry.Center(pts)
		require.NoError(t, err)
		cm, err := geometry.CenterOfMass(pts, nil)
		require.NoError(t, err)
		assert.InDelta(t, c.Lat, cm.Lat, 1e-9)
		assert.InDelta(t, c.Lon, cm.Lon, 1e-9)
	})

	t.Run("damped weighting differs from the mean on uneven clusters", func(t *testing.T) {
		pts := addrPoints(
			[2]float64{40.0, -8.0},
			[2]float64{40.0, -8.0},
			[2]float64{40.0, -8.0},
			[2]float64{41.0, -8.0},
		)
		cm, err := geometry.CenterOfMass(pts, nil)
		require.NoError(t, err)
		// Three stacked points at lat 40 weigh sqrt(3), the lone point 1.
		sqrt3 := math.Sqrt(3)
		assert.InDelta(t, (40.0*sqrt3+41.0)/(sqrt3+1), cm.Lat, 1e-9)

		c, err := geometry.Center(pts)
		require.NoError(t, err)
		assert.NotEqual(t, c.Lat, cm.Lat)
	})

	t.Run("repeated calls are bit-identical", func(t *testing.T) {
		// Семь координат, суммы которых не представимы точно: при
		// суммировании в порядке обхода map результат плавал бы в
		// последнем ULP между вызовами.
		pts := addrPoints(
			[2]float64{0.1, -8.1},
			[2]float64{0.2, -8.2},
			[2]float64{0.3, -8.3},
			[2]float64{0.4, -8.4},
			[2]float64{0.5, -8.5},
			[2]float64{0.6, -8.6},
			[2]float64{0.7, -8.7},
			[2]float64{0.7, -8.7},
		)
		first, err := geometry.CenterOfMass(pts, nil)
		require.NoError(t, err)
		for range 50 {
			got, err := geometry.CenterOfMass(pts, nil)
			require.NoError(t, err)
			assert.Equal(t, first, got)
		}

		// Порядок подачи точек тоже не влияет.
		reversed := make([]domain.AddressPoint, len(pts))
		for i, p := range pts {
			reversed[len(pts)-1-i] = p
		}
		got, err := geometry.CenterOfMass(reversed, nil)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("custom policy overrides default weighting", func(t *testing.T) {
		pts := addrPoints(
			[2]float64{40.0, -8.0},
			[2]float64{40.0, -8.0},
			[2]float64{42.0, -8.0},
		)
		uniform := func(int) float64 { return 1 }
		cm, err := geometry.CenterOfMass(pts, uniform)
		require.NoError(t, err)
		// Each distinct coordinate weighs the same.
		assert.InDelta(t, 41.0, cm.Lat, 1e-9)
	})
}
