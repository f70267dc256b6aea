package dto

import "github.com/geoapi-pt/internal/domain"

// RegionSummary - регион без тяжёлой геометрии границы
type RegionSummary struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Level    domain.RegionLevel    `json:"level"`
	Concelho string                `json:"concelho,omitempty"`
	Distrito string                `json:"distrito,omitempty"`
	Registry *domain.RegistryEntry `json:"registry,omitempty"`
}

// GPSRequest - запрос /gps в query-форме
type GPSRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// GPSResponse - ответ на /gps: тройка административной иерархии
type GPSResponse struct {
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	Freguesia *RegionSummary `json:"freguesia"`
	Concelho  *RegionSummary `json:"concelho,omitempty"`
	Distrito  *RegionSummary `json:"distrito,omitempty"`
}

// NewRegionSummary конвертирует регион в краткое представление
func NewRegionSummary(r *domain.AdministrativeRegion) *RegionSummary {
	if r == nil {
		return nil
	}
	return &RegionSummary{
		ID:       r.ID,
		Name:     r.Name,
		Level:    r.Level,
		Concelho: r.Concelho,
		Distrito: r.Distrito,
		Registry: r.Registry,
	}
}
