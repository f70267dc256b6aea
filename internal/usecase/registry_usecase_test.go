package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/usecase"
)

func testRegions() *domain.RegionSet {
	ring := domain.Ring{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}, {Lat: 0, Lon: 0}}
	mk := func(id, name string, level domain.RegionLevel) *domain.AdministrativeRegion {
		return &domain.AdministrativeRegion{
			ID: id, Name: name, Level: level,
			Boundary: []domain.PolygonPart{{Outer: ring}},
		}
	}
	return domain.NewRegionSet([]*domain.AdministrativeRegion{
		mk("11", "Lisboa", domain.LevelDistrito),
		mk("13", "Porto", domain.LevelDistrito),
		mk("1106", "Lisboa", domain.LevelConcelho),
		mk("1312", "Porto", domain.LevelConcelho),
		mk("1318", "Vila do Conde", domain.LevelConcelho),
		mk("110633", "Campolide", domain.LevelFreguesia),
		mk("131211", "Campanhã", domain.LevelFreguesia),
	})
}

func TestRegistryUseCase(t *testing.T) {
	uc := usecase.NewRegistryUseCase(testRegions(), zap.NewNop())

	t.Run("distritos lists all in load order", func(t *testing.T) {
		distritos := uc.Distritos()
		require.Len(t, distritos, 2)
		assert.Equal(t, "Lisboa", distritos[0].Name)
		assert.Equal(t, "Porto", distritos[1].Name)
	})

	t.Run("exact match returns a single result", func(t *testing.T) {
		matches, err := uc.Find(domain.LevelConcelho, "porto")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "1312", matches[0].ID)
	})

	t.Run("substring match returns all candidates", func(t *testing.T) {
		matches, err := uc.Find(domain.LevelConcelho, "o")
		require.NoError(t, err)
		assert.Greater(t, len(matches), 1)
	})

	t.Run("freguesia lookup is case-insensitive", func(t *testing.T) {
		matches, err := uc.Find(domain.LevelFreguesia, "CAMPOLIDE")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "110633", matches[0].ID)
	})

	t.Run("no match is not found", func(t *testing.T) {
		_, err := uc.Find(domain.LevelFreguesia, "atlantida")
		assert.Equal(t, errors.ErrRegionNotFound, err)
	})

	t.Run("empty query is invalid", func(t *testing.T) {
		_, err := uc.Find(domain.LevelDistrito, "")
		assert.Equal(t, errors.ErrInvalidRequest, err)
	})
}
