package geometry

import "github.com/geoapi-pt/internal/domain"

// PointInRing reports whether the point lies inside the closed ring,
// using the crossing-number (ray casting) test. Points exactly on an
// edge count as inside, which keeps boundary-seam resolution stable.
func PointInRing(lat, lon float64, ring domain.Ring) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[j], ring[i]
		if onSegment(lat, lon, a, b) {
			return true
		}
		if (a.Lat > lat) != (b.Lat > lat) {
			x := a.Lon + (lat-a.Lat)/(b.Lat-a.Lat)*(b.Lon-a.Lon)
			if lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

// PointInPart reports containment in a polygon part: inside the outer
// ring and outside every hole.
func PointInPart(lat, lon float64, part domain.PolygonPart) bool {
	if !PointInRing(lat, lon, part.Outer) {
		return false
	}
	for _, hole := range part.Holes {
		if PointInRing(lat, lon, hole) {
			return false
		}
	}
	return true
}

// PointInBoundary reports containment in any part of a multi-part
// boundary.
func PointInBoundary(lat, lon float64, boundary []domain.PolygonPart) bool {
	for _, part := range boundary {
		if PointInPart(lat, lon, part) {
			return true
		}
	}
	return false
}

const segmentEpsilon = 1e-12

// onSegment reports whether the point lies on the segment a-b.
func onSegment(lat, lon float64, a, b domain.Point) bool {
	crossVal := (b.Lon-a.Lon)*(lat-a.Lat) - (b.Lat-a.Lat)*(lon-a.Lon)
	if crossVal > segmentEpsilon || crossVal < -segmentEpsilon {
		return false
	}
	if lat < min(a.Lat, b.Lat) || lat > max(a.Lat, b.Lat) {
		return false
	}
	if lon < min(a.Lon, b.Lon) || lon > max(a.Lon, b.Lon) {
		return false
	}
	return true
}
