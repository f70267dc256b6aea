package geodata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/repository/geodata"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const boundariesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"id": "110633", "name": "Campolide", "level": "freguesia", "concelho": "Lisboa", "distrito": "Lisboa", "code": "110633", "locality": "Lisboa", "contact": "geral@jf-campolide.pt"},
      "geometry": {"type": "Polygon", "coordinates": [[[-9.18, 38.72], [-9.16, 38.72], [-9.16, 38.74], [-9.18, 38.74], [-9.18, 38.72]]]}
    },
    {
      "type": "Feature",
      "properties": {"id": "1106", "name": "Lisboa", "level": "concelho", "distrito": "Lisboa"},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[-9.2, 38.7], [-9.1, 38.7], [-9.1, 38.8], [-9.2, 38.8], [-9.2, 38.7]]],
        [[[-9.3, 38.6], [-9.25, 38.6], [-9.25, 38.65], [-9.3, 38.65], [-9.3, 38.6]]]
      ]}
    }
  ]
}`

func TestLoadRegions(t *testing.T) {
	t.Run("loads polygon and multipolygon features in file order", func(t *testing.T) {
		path := writeFile(t, "boundaries.json", boundariesJSON)
		regions, err := geodata.LoadRegions(path, zap.NewNop())
		require.NoError(t, err)
		require.Len(t, regions, 2)

		freguesia := regions[0]
		assert.Equal(t, "Campolide", freguesia.Name)
		assert.Equal(t, domain.LevelFreguesia, freguesia.Level)
		assert.Equal(t, "Lisboa", freguesia.Concelho)
		require.Len(t, freguesia.Boundary, 1)
		// GeoJSON is [lon, lat].
		assert.Equal(t, domain.Point{Lat: 38.72, Lon: -9.18}, freguesia.Boundary[0].Outer[0])
		assert.True(t, freguesia.Boundary[0].Outer.Closed())

		// Институциональные метаданные из properties попадают в Registry
		require.NotNil(t, freguesia.Registry)
		assert.Equal(t, "110633", freguesia.Registry.Code)
		assert.Equal(t, "geral@jf-campolide.pt", freguesia.Registry.Contact)
		assert.Equal(t, "Campolide", freguesia.Registry.Name)

		concelho := regions[1]
		assert.Equal(t, domain.LevelConcelho, concelho.Level)
		assert.Len(t, concelho.Boundary, 2)
		// Без метаданных в properties поле остаётся пустым
		assert.Nil(t, concelho.Registry)
	})

	t.Run("unknown level is fatal", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"id":"x","name":"X","level":"bairro"},
			 "geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}]}`)
		_, err := geodata.LoadRegions(path, zap.NewNop())
		assert.ErrorContains(t, err, "unknown region level")
	})

	t.Run("unsupported geometry is fatal", func(t *testing.T) {
		path := writeFile(t, "point.json", `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"id":"x","name":"X","level":"freguesia"},
			 "geometry":{"type":"Point","coordinates":[0,0]}}]}`)
		_, err := geodata.LoadRegions(path, zap.NewNop())
		assert.ErrorContains(t, err, "unsupported geometry type")
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := geodata.LoadRegions("/nonexistent/boundaries.json", zap.NewNop())
		assert.Error(t, err)
	})
}

func TestLoadRegistry(t *testing.T) {
	full := writeFile(t, "codes.csv",
		"code,locality,name,address,contact,concelho,distrito\n"+
			"3150-012,Condeixa-a-Nova,CTT Condeixa,Rua Central 1,239000000,Condeixa-a-Nova,Coimbra\n")
	prefixes := writeFile(t, "prefixes.csv",
		"code,locality,name,address,contact,concelho,distrito\n"+
			"3150,Condeixa,,,,Condeixa-a-Nova,Coimbra\n")

	registry, err := geodata.LoadRegistry(full, prefixes, zap.NewNop())
	require.NoError(t, err)

	entry := registry.ByCode("3150-012")
	require.NotNil(t, entry)
	assert.Equal(t, "Condeixa-a-Nova", entry.Locality)
	assert.Equal(t, "Coimbra", entry.Distrito)

	prefix := registry.ByCP4("3150")
	require.NotNil(t, prefix)
	assert.Equal(t, "Condeixa", prefix.Locality)

	assert.Nil(t, registry.ByCode("9999-999"))
}

func TestLoadAddressPoints(t *testing.T) {
	feed := writeFile(t, "addresses.csv",
		"lat,lon,street,house_number,cp4,cp3\n"+
			"40.0,-8.0,Rua A,12,3150,012\n"+
			"not-a-number,-8.0,Rua B,1,3150,012\n"+ // skipped
			"40.1,-8.1,Rua C,,3150,013\n"+
			"40.2,-8.2,Rua D,3,315,0123\n") // malformed code, skipped

	points, err := geodata.LoadAddressPoints(feed, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "Rua A", points[0].Street)
	assert.Equal(t, "3150-012", points[0].Code())
	assert.Empty(t, points[1].HouseNumber)
}
