// Package geometry contains the planar lat/lon primitives shared by the
// postal aggregation pipeline and the region resolver. All functions are
// pure and safe for concurrent use.
package geometry

import (
	"math"
	"sort"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
)

// WeightPolicy assigns a weight to a distinct coordinate given how many
// address points share it. The center-of-mass weighting is deliberately
// pluggable; the default damps duplicate stacks with a square root so a
// single building with many doorbells does not dominate the code.
type WeightPolicy func(occurrences int) float64

// DampedCountWeight weights each distinct coordinate by sqrt(occurrence
// count). With all points distinct the center of mass equals Center; with
// uneven clustering it sits between Center and the cluster-dominated mean.
func DampedCountWeight(occurrences int) float64 {
	return math.Sqrt(float64(occurrences))
}

// Center returns the arithmetic mean of the point coordinates.
func Center(points []domain.AddressPoint) (domain.Point, error) {
	if len(points) == 0 {
		return domain.Point{}, errors.ErrInsufficientData
	}
	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}
	n := float64(len(points))
	return domain.Point{Lat: sumLat / n, Lon: sumLon / n}, nil
}

// CenterOfMass returns the weighted mean over distinct coordinates. The
// policy receives the occurrence count of each coordinate; nil falls back
// to DampedCountWeight.
func CenterOfMass(points []domain.AddressPoint, policy WeightPolicy) (domain.Point, error) {
	if len(points) == 0 {
		return domain.Point{}, errors.ErrInsufficientData
	}
	if policy == nil {
		policy = DampedCountWeight
	}

	occurrences := make(map[domain.Point]int, len(points))
	for _, p := range points {
		occurrences[domain.Point{Lat: p.Lat, Lon: p.Lon}]++
	}

	// Суммирование в порядке обхода map недетерминировано из-за
	// неассоциативности float-сложения; фиксируем порядок сортировкой,
	// чтобы повторные запуски давали байт-идентичные артефакты.
	distinct := make([]domain.Point, 0, len(occurrences))
	for coord := range occurrences {
		distinct = append(distinct, coord)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].Lat != distinct[j].Lat {
			return distinct[i].Lat < distinct[j].Lat
		}
		return distinct[i].Lon < distinct[j].Lon
	})

	var sumLat, sumLon, sumW float64
	for _, coord := range distinct {
		w := policy(occurrences[coord])
		sumLat += coord.Lat * w
		sumLon += coord.Lon * w
		sumW += w
	}
	if sumW == 0 {
		return Center(points)
	}
	return domain.Point{Lat: sumLat / sumW, Lon: sumLon / sumW}, nil
}
