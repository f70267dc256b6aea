// Package geoindex ускоряет point-in-region запросы: равномерная сетка
// поверх bbox регионов плюс точный ray-casting тест по кандидатам.
package geoindex

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
)

// minCellSize не даёт сетке выродиться на наборах из крошечных регионов.
const minCellSize = 0.01 // degrees

// Index - равномерная пространственная сетка. Каждая ячейка хранит все
// регионы, чей bbox её пересекает. Candidates возвращает надмножество
// истинного ответа. После Build индекс только читается.
type Index struct {
	regions  []*domain.AdministrativeRegion
	bounds   domain.BoundingBox
	cellSize float64
	cols     int
	rows     int
	cells    [][]*domain.AdministrativeRegion
}

// Build строит индекс. Размер ячейки - медиана максимального размера bbox
// регионов: компромисс между памятью и размером списка кандидатов.
// Любое незамкнутое или вырожденное кольцо фатально для всего построения.
func Build(regions []*domain.AdministrativeRegion, logger *zap.Logger) (*Index, error) {
	if len(regions) == 0 {
		return nil, &errors.MalformedBoundaryError{Reason: "no regions to index"}
	}

	for _, r := range regions {
		if err := validateBoundary(r); err != nil {
			return nil, err
		}
	}

	bounds := regions[0].Bounds()
	extents := make([]float64, 0, len(regions))
	for _, r := range regions {
		b := r.Bounds()
		bounds = bounds.Extend(b.MinLat, b.MinLon)
		bounds = bounds.Extend(b.MaxLat, b.MaxLon)
		extents = append(extents, math.Max(b.MaxLat-b.MinLat, b.MaxLon-b.MinLon))
	}

	sort.Float64s(extents)
	cellSize := extents[len(extents)/2]
	if cellSize < minCellSize {
		cellSize = minCellSize
	}

	cols := int(math.Ceil((bounds.MaxLon-bounds.MinLon)/cellSize)) + 1
	rows := int(math.Ceil((bounds.MaxLat-bounds.MinLat)/cellSize)) + 1

	idx := &Index{
		regions:  regions,
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]*domain.AdministrativeRegion, cols*rows),
	}

	for _, r := range regions {
		b := r.Bounds()
		minCol, minRow := idx.cell(b.MinLat, b.MinLon)
		maxCol, maxRow := idx.cell(b.MaxLat, b.MaxLon)
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				i := row*cols + col
				idx.cells[i] = append(idx.cells[i], r)
			}
		}
	}

	logger.Info("Boundary index built",
		zap.Int("regions", len(regions)),
		zap.Float64("cell_size_deg", cellSize),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
	)

	return idx, nil
}

// Candidates возвращает регионы, чей bbox пересекает ячейку точки.
// Надмножество истинного ответа: точный тест делает резолвер.
func (idx *Index) Candidates(lat, lon float64) []*domain.AdministrativeRegion {
	if !idx.bounds.Contains(lat, lon) {
		return nil
	}
	col, row := idx.cell(lat, lon)
	return idx.cells[row*idx.cols+col]
}

// Size возвращает количество индексированных регионов
func (idx *Index) Size() int {
	return len(idx.regions)
}

func (idx *Index) cell(lat, lon float64) (col, row int) {
	col = int((lon - idx.bounds.MinLon) / idx.cellSize)
	row = int((lat - idx.bounds.MinLat) / idx.cellSize)
	if col < 0 {
		col = 0
	}
	if col >= idx.cols {
		col = idx.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= idx.rows {
		row = idx.rows - 1
	}
	return col, row
}

func validateBoundary(r *domain.AdministrativeRegion) error {
	if len(r.Boundary) == 0 {
		return &errors.MalformedBoundaryError{Region: r.Name, Reason: "region has no boundary parts"}
	}
	for _, part := range r.Boundary {
		rings := append([]domain.Ring{part.Outer}, part.Holes...)
		for _, ring := range rings {
			if len(ring) < 4 {
				return &errors.MalformedBoundaryError{
					Region:   r.Name,
					Vertices: len(ring),
					Reason:   "ring has fewer than 4 vertices",
				}
			}
			if !ring.Closed() {
				return &errors.MalformedBoundaryError{
					Region:   r.Name,
					Vertices: len(ring),
					Reason:   "ring is not closed",
				}
			}
		}
	}
	return nil
}
