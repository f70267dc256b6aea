package usecase

import (
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/usecase/dto"
)

// RegistryUseCase - простые чтения по загруженным таблицам регионов:
// /distritos, /distrito/:name, /municipio/:name, /freguesia/:name.
// Геометрии не касается.
type RegistryUseCase struct {
	regions *domain.RegionSet
	logger  *zap.Logger
}

func NewRegistryUseCase(regions *domain.RegionSet, logger *zap.Logger) *RegistryUseCase {
	return &RegistryUseCase{
		regions: regions,
		logger:  logger,
	}
}

// Distritos возвращает все округа в порядке загрузки
func (uc *RegistryUseCase) Distritos() []*dto.RegionSummary {
	out := make([]*dto.RegionSummary, 0, len(uc.regions.Distritos))
	for _, r := range uc.regions.Distritos {
		out = append(out, dto.NewRegionSummary(r))
	}
	return out
}

// Find ищет регионы уровня по имени: точное совпадение без учёта регистра
// даёт единственный результат, иначе фильтр по подстроке. Пустой результат
// - ErrRegionNotFound.
func (uc *RegistryUseCase) Find(level domain.RegionLevel, query string) ([]*dto.RegionSummary, error) {
	if query == "" {
		return nil, errors.ErrInvalidRequest
	}

	matches := uc.regions.FilterByName(level, query)
	if len(matches) == 0 {
		return nil, errors.ErrRegionNotFound
	}

	out := make([]*dto.RegionSummary, 0, len(matches))
	for _, r := range matches {
		out = append(out, dto.NewRegionSummary(r))
	}
	return out, nil
}

// Counts возвращает размеры загруженных уровней для health-эндпоинта
func (uc *RegistryUseCase) Counts() (freguesias, concelhos, distritos int) {
	return len(uc.regions.Freguesias), len(uc.regions.Concelhos), len(uc.regions.Distritos)
}
