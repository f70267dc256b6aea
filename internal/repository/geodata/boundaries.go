// Package geodata загружает исходные данные: границы административных
// единиц (GeoJSON), официальный реестр почтовых кодов и выгрузку адресов
// (CSV). Все загрузки выполняются один раз при старте процесса.
package geodata

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
)

type geoJSONFile struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Properties regionProps     `json:"properties"`
	Geometry   geoJSONGeometry `json:"geometry"`
}

type regionProps struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Concelho string `json:"concelho,omitempty"`
	Distrito string `json:"distrito,omitempty"`

	// Институциональные метаданные единицы, если источник их несёт
	Code     string `json:"code,omitempty"`
	Locality string `json:"locality,omitempty"`
	Address  string `json:"address,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadRegions читает границы из GeoJSON FeatureCollection. Порядок
// features сохраняется: он служит детерминированным tie-break резолвера.
// Структурно некорректная геометрия фатальна - с частичными границами
// резолвер не может безопасно работать.
func LoadRegions(path string, logger *zap.Logger) ([]*domain.AdministrativeRegion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries file: %w", err)
	}

	var file geoJSONFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse boundaries file: %w", err)
	}

	regions := make([]*domain.AdministrativeRegion, 0, len(file.Features))
	for i, f := range file.Features {
		region, err := toRegion(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, f.Properties.Name, err)
		}
		regions = append(regions, region)
	}

	logger.Info("Administrative boundaries loaded",
		zap.String("path", path),
		zap.Int("regions", len(regions)),
	)
	return regions, nil
}

func toRegion(f geoJSONFeature) (*domain.AdministrativeRegion, error) {
	level := domain.RegionLevel(f.Properties.Level)
	switch level {
	case domain.LevelFreguesia, domain.LevelConcelho, domain.LevelDistrito:
	default:
		return nil, fmt.Errorf("unknown region level %q", f.Properties.Level)
	}

	var parts []domain.PolygonPart
	switch f.Geometry.Type {
	case "Polygon":
		var rings [][][2]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("decode polygon: %w", err)
		}
		part, err := toPart(rings)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	case "MultiPolygon":
		var polys [][][][2]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("decode multipolygon: %w", err)
		}
		for _, rings := range polys {
			part, err := toPart(rings)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", f.Geometry.Type)
	}

	region := &domain.AdministrativeRegion{
		ID:       f.Properties.ID,
		Name:     f.Properties.Name,
		Level:    level,
		Concelho: f.Properties.Concelho,
		Distrito: f.Properties.Distrito,
		Boundary: parts,
	}
	if p := f.Properties; p.Code != "" || p.Locality != "" || p.Address != "" || p.Contact != "" {
		region.Registry = &domain.RegistryEntry{
			Code:     p.Code,
			Locality: p.Locality,
			Name:     p.Name,
			Address:  p.Address,
			Contact:  p.Contact,
			Concelho: p.Concelho,
			Distrito: p.Distrito,
		}
	}
	return region, nil
}

// toPart конвертирует кольца GeoJSON ([lon, lat]) в PolygonPart: первое
// кольцо внешнее, остальные - дырки.
func toPart(rings [][][2]float64) (domain.PolygonPart, error) {
	if len(rings) == 0 {
		return domain.PolygonPart{}, fmt.Errorf("polygon has no rings")
	}
	part := domain.PolygonPart{Outer: toRing(rings[0])}
	for _, hole := range rings[1:] {
		part.Holes = append(part.Holes, toRing(hole))
	}
	return part, nil
}

func toRing(coords [][2]float64) domain.Ring {
	ring := make(domain.Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, domain.Point{Lon: c[0], Lat: c[1]})
	}
	return ring
}
