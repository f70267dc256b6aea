package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/usecase"
	"github.com/geoapi-pt/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockGeoResolver is a mock of GeoResolver
type MockGeoResolver struct {
	mock.Mock
}

func (m *MockGeoResolver) ResolveHierarchy(lat, lon float64) (*domain.RegionHierarchy, error) {
	args := m.Called(lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegionHierarchy), args.Error(1)
}

func sampleHierarchy() *domain.RegionHierarchy {
	return &domain.RegionHierarchy{
		Freguesia: &domain.AdministrativeRegion{
			ID: "110633", Name: "Campolide", Level: domain.LevelFreguesia,
			Concelho: "Lisboa", Distrito: "Lisboa",
		},
		Concelho: &domain.AdministrativeRegion{ID: "1106", Name: "Lisboa", Level: domain.LevelConcelho},
		Distrito: &domain.AdministrativeRegion{ID: "11", Name: "Lisboa", Level: domain.LevelDistrito},
	}
}

func TestGPSUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("invalid coordinates are rejected", func(t *testing.T) {
		uc := usecase.NewGPSUseCase(&MockGeoResolver{}, nil, logger, time.Hour)
		_, err := uc.Resolve(ctx, 91, 0)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})

	t.Run("resolves and caches the hierarchy", func(t *testing.T) {
		resolver := &MockGeoResolver{}
		resolver.On("ResolveHierarchy", 38.73, -9.17).Return(sampleHierarchy(), nil)

		cache := &MockCacheRepository{}
		cache.On("Get", ctx, "gps:38.730000:-9.170000").Return(nil, nil)
		cache.On("Set", ctx, "gps:38.730000:-9.170000", mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewGPSUseCase(resolver, cache, logger, time.Hour)
		resp, err := uc.Resolve(ctx, 38.73, -9.17)
		require.NoError(t, err)

		assert.Equal(t, "Campolide", resp.Freguesia.Name)
		require.NotNil(t, resp.Concelho)
		assert.Equal(t, "Lisboa", resp.Concelho.Name)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the resolver", func(t *testing.T) {
		cached, _ := json.Marshal(&dto.GPSResponse{
			Lat: 38.73, Lon: -9.17,
			Freguesia: &dto.RegionSummary{Name: "Campolide"},
		})
		cache := &MockCacheRepository{}
		cache.On("Get", ctx, "gps:38.730000:-9.170000").Return(cached, nil)

		resolver := &MockGeoResolver{}
		uc := usecase.NewGPSUseCase(resolver, cache, logger, time.Hour)

		resp, err := uc.Resolve(ctx, 38.73, -9.17)
		require.NoError(t, err)
		assert.Equal(t, "Campolide", resp.Freguesia.Name)
		resolver.AssertNotCalled(t, "ResolveHierarchy")
	})

	t.Run("cache set failure does not fail the request", func(t *testing.T) {
		resolver := &MockGeoResolver{}
		resolver.On("ResolveHierarchy", 38.73, -9.17).Return(sampleHierarchy(), nil)

		cache := &MockCacheRepository{}
		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		uc := usecase.NewGPSUseCase(resolver, cache, logger, time.Hour)
		resp, err := uc.Resolve(ctx, 38.73, -9.17)
		require.NoError(t, err)
		assert.NotNil(t, resp.Freguesia)
	})

	t.Run("not found propagates", func(t *testing.T) {
		resolver := &MockGeoResolver{}
		resolver.On("ResolveHierarchy", 0.0, 0.0).Return(nil, errors.ErrRegionNotFound)

		uc := usecase.NewGPSUseCase(resolver, nil, logger, time.Hour)
		_, err := uc.Resolve(ctx, 0, 0)
		assert.Equal(t, errors.ErrRegionNotFound, err)
	})
}
