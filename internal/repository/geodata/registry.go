package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
)

// LoadRegistry читает официальный реестр: CSV полных кодов CP4-CP3 и CSV
// сводных записей CP4. Ожидаемые колонки (с заголовком):
// code,locality,name,address,contact,concelho,distrito
func LoadRegistry(fullPath, prefixPath string, logger *zap.Logger) (*domain.PostalRegistry, error) {
	full, err := loadRegistryFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("load full-code registry: %w", err)
	}
	prefixes, err := loadRegistryFile(prefixPath)
	if err != nil {
		return nil, fmt.Errorf("load prefix registry: %w", err)
	}

	logger.Info("Postal registry loaded",
		zap.Int("full_codes", len(full)),
		zap.Int("prefixes", len(prefixes)),
	)
	return domain.NewPostalRegistry(full, prefixes), nil
}

func loadRegistryFile(path string) ([]*domain.RegistryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 7

	// Skip header.
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var entries []*domain.RegistryEntry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		entries = append(entries, &domain.RegistryEntry{
			Code:     row[0],
			Locality: row[1],
			Name:     row[2],
			Address:  row[3],
			Contact:  row[4],
			Concelho: row[5],
			Distrito: row[6],
		})
	}
	return entries, nil
}
