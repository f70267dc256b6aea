package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
)

// LoadAddressPoints читает выгрузку адресов. Ожидаемые колонки (с
// заголовком): lat,lon,street,house_number,cp4,cp3. Битые строки
// пропускаются со счётчиком: выгрузка внешняя и исторически содержит
// строки без координат.
func LoadAddressPoints(path string, logger *zap.Logger) ([]domain.AddressPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address feed: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read address feed header: %w", err)
	}

	var (
		points  []domain.AddressPoint
		skipped int
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		point, ok := toAddressPoint(row)
		if !ok {
			skipped++
			continue
		}
		points = append(points, point)
	}

	logger.Info("Address feed loaded",
		zap.String("path", path),
		zap.Int("points", len(points)),
		zap.Int("skipped", skipped),
	)
	return points, nil
}

func toAddressPoint(row []string) (domain.AddressPoint, bool) {
	lat, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return domain.AddressPoint{}, false
	}
	lon, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return domain.AddressPoint{}, false
	}

	cp4, cp3 := row[4], row[5]
	if len(cp4) != 4 || len(cp3) != 3 {
		return domain.AddressPoint{}, false
	}
	if _, _, ok := domain.ParsePostalCode(cp4 + cp3); !ok {
		return domain.AddressPoint{}, false
	}

	return domain.AddressPoint{
		Lat:         lat,
		Lon:         lon,
		Street:      row[2],
		HouseNumber: row[3],
		CP4:         cp4,
		CP3:         cp3,
	}, true
}
