package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/pkg/utils"
	"github.com/geoapi-pt/internal/usecase/dto"
)

// GeoResolver - точное разрешение точки в административную иерархию
type GeoResolver interface {
	ResolveHierarchy(lat, lon float64) (*domain.RegionHierarchy, error)
}

// GPSUseCase - use case для /gps: разрешение координат в регион с
// кешированием ответов. Ошибки кеша деградируют до прямого запроса.
type GPSUseCase struct {
	resolver  GeoResolver
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewGPSUseCase(
	resolver GeoResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GPSUseCase {
	return &GPSUseCase{
		resolver:  resolver,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Resolve возвращает тройку freguesia/concelho/distrito для точки
func (uc *GPSUseCase) Resolve(ctx context.Context, lat, lon float64) (*dto.GPSResponse, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	cacheKey := fmt.Sprintf("gps:%.6f:%.6f", lat, lon)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.GPSResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	hierarchy, err := uc.resolver.ResolveHierarchy(lat, lon)
	if err != nil {
		return nil, err
	}

	resp := &dto.GPSResponse{
		Lat:       lat,
		Lon:       lon,
		Freguesia: dto.NewRegionSummary(hierarchy.Freguesia),
		Concelho:  dto.NewRegionSummary(hierarchy.Concelho),
		Distrito:  dto.NewRegionSummary(hierarchy.Distrito),
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache GPS response", zap.Error(err))
			}
		}
	}

	return resp, nil
}
