package geometry

import (
	"sort"

	"github.com/geoapi-pt/internal/domain"
)

// ConvexHull returns the convex hull of the point set as a closed ring
// (first vertex repeated at the end), or nil when fewer than 3 distinct
// non-collinear points exist. Andrew's monotone chain over (lon, lat).
func ConvexHull(points []domain.AddressPoint) domain.Ring {
	distinct := make([]domain.Point, 0, len(points))
	seen := make(map[domain.Point]struct{}, len(points))
	for _, p := range points {
		c := domain.Point{Lat: p.Lat, Lon: p.Lon}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		distinct = append(distinct, c)
	}
	if len(distinct) < 3 {
		return nil
	}

	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].Lon != distinct[j].Lon {
			return distinct[i].Lon < distinct[j].Lon
		}
		return distinct[i].Lat < distinct[j].Lat
	})

	var lower []domain.Point
	for _, p := range distinct {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []domain.Point
	for i := len(distinct) - 1; i >= 0; i-- {
		p := distinct[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Last point of each chain is the first of the other.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// All points collinear.
		return nil
	}

	ring := make(domain.Ring, 0, len(hull)+1)
	ring = append(ring, hull...)
	ring = append(ring, hull[0])
	return ring
}

// cross returns the z-component of (b-a) x (c-a): positive for a left
// turn, zero for collinear points.
func cross(a, b, c domain.Point) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}
