package artifact_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/repository/artifact"
)

func sampleRecord() *domain.PostalCodeRecord {
	return &domain.PostalCodeRecord{
		Code:     "3150-012",
		Registry: &domain.RegistryEntry{Code: "3150-012", Locality: "Condeixa-a-Nova"},
		Points: []domain.AddressPoint{
			{Lat: 40.0, Lon: -8.0, Street: "Rua Principal", CP4: "3150", CP3: "012"},
		},
		Center:       domain.Point{Lat: 40.0, Lon: -8.0},
		CenterOfMass: domain.Point{Lat: 40.0, Lon: -8.0},
	}
}

func TestStore_PutGetRecord(t *testing.T) {
	root := t.TempDir()
	store := artifact.NewStore(root, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.PutRecord(ctx, sampleRecord()))

	t.Run("artifact lands in the CP4 shard directory", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(root, "3150", "3150-012.json"))
		assert.NoError(t, err)
	})

	t.Run("round trip preserves the record", func(t *testing.T) {
		got, err := store.GetRecord(ctx, "3150", "012")
		require.NoError(t, err)
		assert.Equal(t, "3150-012", got.Code)
		assert.Equal(t, "Condeixa-a-Nova", got.Registry.Locality)
		assert.Len(t, got.Points, 1)
	})

	t.Run("unknown code is a miss", func(t *testing.T) {
		_, err := store.GetRecord(ctx, "9999", "999")
		assert.Equal(t, errors.ErrCodeNotFound, err)
	})

	t.Run("overwrite is idempotent", func(t *testing.T) {
		require.NoError(t, store.PutRecord(ctx, sampleRecord()))
		got, err := store.GetRecord(ctx, "3150", "012")
		require.NoError(t, err)
		assert.Equal(t, "3150-012", got.Code)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(root, "3150"))
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-")
		}
	})
}

func TestStore_PrefixRecord(t *testing.T) {
	root := t.TempDir()
	store := artifact.NewStore(root, zap.NewNop())
	ctx := context.Background()

	record := &domain.PostalCodePrefixRecord{
		CP4:      "3150",
		Suffixes: []string{"012", "013"},
		Points: []domain.AddressPoint{
			{Lat: 40.0, Lon: -8.0, CP4: "3150", CP3: "012"},
			{Lat: 40.1, Lon: -8.1, CP4: "3150", CP3: "013"},
		},
		Center: domain.Point{Lat: 40.05, Lon: -8.05},
	}
	require.NoError(t, store.PutPrefixRecord(ctx, record))

	t.Run("summary file shares the shard directory", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(root, "3150", "3150.json"))
		assert.NoError(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := store.GetPrefixRecord(ctx, "3150")
		require.NoError(t, err)
		assert.Equal(t, []string{"012", "013"}, got.Suffixes)
		assert.Len(t, got.Points, 2)
	})

	t.Run("missing prefix is a miss", func(t *testing.T) {
		_, err := store.GetPrefixRecord(ctx, "0000")
		assert.Equal(t, errors.ErrCodeNotFound, err)
	})
}
