package geoindex

import (
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/geometry"
	"github.com/geoapi-pt/internal/pkg/errors"
)

// Resolver отвечает на точные point-in-region запросы поверх индекса.
// Чистая функция над неизменяемым состоянием: без блокировок, безопасен
// для конкурентных вызовов.
type Resolver struct {
	index   *Index
	regions *domain.RegionSet
	logger  *zap.Logger
}

func NewResolver(index *Index, regions *domain.RegionSet, logger *zap.Logger) *Resolver {
	return &Resolver{
		index:   index,
		regions: regions,
		logger:  logger,
	}
}

// Resolve возвращает freguesia, содержащую точку. Индекс может содержать
// все уровни, поэтому кандидаты других уровней пропускаются: точка внутри
// concelho всегда внутри какой-то его freguesia, и разрешение идёт по
// листьям. Кандидаты проверяются точным ray-casting тестом; при наложении
// границ данных выигрывает первый регион в порядке загрузки -
// документированный детерминированный tie-break, а не арбитраж спорных
// границ.
func (r *Resolver) Resolve(lat, lon float64) (*domain.AdministrativeRegion, error) {
	for _, candidate := range r.index.Candidates(lat, lon) {
		if candidate.Level != domain.LevelFreguesia {
			continue
		}
		if !candidate.Bounds().Contains(lat, lon) {
			continue
		}
		if geometry.PointInBoundary(lat, lon, candidate.Boundary) {
			return candidate, nil
		}
	}
	return nil, errors.ErrRegionNotFound
}

// ResolveHierarchy возвращает тройку freguesia/concelho/distrito. Родители
// берутся из загруженных таблиц по записанным связям, без геометрии.
func (r *Resolver) ResolveHierarchy(lat, lon float64) (*domain.RegionHierarchy, error) {
	freguesia, err := r.Resolve(lat, lon)
	if err != nil {
		return nil, err
	}

	h := &domain.RegionHierarchy{Freguesia: freguesia}
	if freguesia.Concelho != "" {
		h.Concelho = r.regions.ConcelhoByName(freguesia.Concelho)
		if h.Concelho == nil {
			r.logger.Warn("Freguesia references unknown concelho",
				zap.String("freguesia", freguesia.Name),
				zap.String("concelho", freguesia.Concelho),
			)
		}
	}
	if freguesia.Distrito != "" {
		h.Distrito = r.regions.DistritoByName(freguesia.Distrito)
		if h.Distrito == nil {
			r.logger.Warn("Freguesia references unknown distrito",
				zap.String("freguesia", freguesia.Name),
				zap.String("distrito", freguesia.Distrito),
			)
		}
	}
	return h, nil
}
