// Package aggregator собирает артефакты почтовых кодов из плоского потока
// адресных точек и строк официального реестра: группировка по кодам,
// центры, выпуклая оболочка, слияние с метаданными реестра.
package aggregator

import (
	"sort"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/geometry"
	"github.com/geoapi-pt/internal/pkg/errors"
)

// Aggregator - офлайн-сборщик артефактов. Входные коллекции не мутирует.
type Aggregator struct {
	registry *domain.PostalRegistry
	store    repository.ArtifactRepository
	weight   geometry.WeightPolicy
	workers  int
	logger   *zap.Logger
}

// Option настраивает Aggregator
type Option func(*Aggregator)

// WithWeightPolicy подменяет политику взвешивания центра масс
func WithWeightPolicy(p geometry.WeightPolicy) Option {
	return func(a *Aggregator) { a.weight = p }
}

// WithWorkers задаёт размер пула воркеров пакетного запуска
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

func New(
	registry *domain.PostalRegistry,
	store repository.ArtifactRepository,
	logger *zap.Logger,
	opts ...Option,
) *Aggregator {
	a := &Aggregator{
		registry: registry,
		store:    store,
		weight:   geometry.DampedCountWeight,
		workers:  defaultWorkers,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GroupByCode разбивает точки по полному коду CP4-CP3. Членство групп
// детерминировано; внутри группы точки сортируются, чтобы повторный
// запуск давал байт-идентичные артефакты.
func (a *Aggregator) GroupByCode(points []domain.AddressPoint) map[string][]domain.AddressPoint {
	groups := make(map[string][]domain.AddressPoint)
	for _, p := range points {
		code := p.Code()
		groups[code] = append(groups[code], p)
	}
	for code := range groups {
		sortPoints(groups[code])
	}
	return groups
}

// GroupByPrefix сворачивает группы полных кодов до префикса CP4
func (a *Aggregator) GroupByPrefix(groups map[string][]domain.AddressPoint) map[string][]domain.AddressPoint {
	prefixes := make(map[string][]domain.AddressPoint)
	for code, pts := range groups {
		cp4 := code[:4]
		prefixes[cp4] = append(prefixes[cp4], pts...)
	}
	for cp4 := range prefixes {
		sortPoints(prefixes[cp4])
	}
	return prefixes
}

// AssembleRecord собирает артефакт полного кода: геометрия плюс строка
// реестра. Код без записи в реестре даёт UnknownCodeError - адресные
// данные шире реестра, такой код пропускается выше по стеку.
func (a *Aggregator) AssembleRecord(code string, points []domain.AddressPoint) (*domain.PostalCodeRecord, error) {
	entry := a.registry.ByCode(code)
	if entry == nil {
		return nil, &errors.UnknownCodeError{Code: code}
	}

	center, err := geometry.Center(points)
	if err != nil {
		return nil, err
	}
	centerOfMass, err := geometry.CenterOfMass(points, a.weight)
	if err != nil {
		return nil, err
	}

	return &domain.PostalCodeRecord{
		Code:         code,
		Registry:     entry,
		Points:       points,
		Center:       center,
		CenterOfMass: centerOfMass,
		Boundary:     geometry.ConvexHull(points),
	}, nil
}

// AssemblePrefixRecord собирает сводный артефакт префикса CP4
func (a *Aggregator) AssemblePrefixRecord(cp4 string, points []domain.AddressPoint, suffixes []string) (*domain.PostalCodePrefixRecord, error) {
	entry := a.registry.ByCP4(cp4)
	if entry == nil {
		return nil, &errors.UnknownCodeError{Code: cp4}
	}

	center, err := geometry.Center(points)
	if err != nil {
		return nil, err
	}
	centerOfMass, err := geometry.CenterOfMass(points, a.weight)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(suffixes))
	copy(sorted, suffixes)
	sort.Strings(sorted)

	return &domain.PostalCodePrefixRecord{
		CP4:          cp4,
		Registry:     entry,
		Suffixes:     sorted,
		Points:       points,
		Center:       center,
		CenterOfMass: centerOfMass,
		Boundary:     geometry.ConvexHull(points),
	}, nil
}

func sortPoints(pts []domain.AddressPoint) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Lat != pts[j].Lat {
			return pts[i].Lat < pts[j].Lat
		}
		if pts[i].Lon != pts[j].Lon {
			return pts[i].Lon < pts[j].Lon
		}
		if pts[i].Street != pts[j].Street {
			return pts[i].Street < pts[j].Street
		}
		return pts[i].HouseNumber < pts[j].HouseNumber
	})
}
