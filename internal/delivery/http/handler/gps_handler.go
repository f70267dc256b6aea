package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/pkg/utils"
	"github.com/geoapi-pt/internal/pkg/validator"
	"github.com/geoapi-pt/internal/usecase"
	"github.com/geoapi-pt/internal/usecase/dto"
)

// GPSHandler - обработчик разрешения координат в административный регион
type GPSHandler struct {
	gpsUC  *usecase.GPSUseCase
	logger *zap.Logger
}

func NewGPSHandler(gpsUC *usecase.GPSUseCase, logger *zap.Logger) *GPSHandler {
	return &GPSHandler{
		gpsUC:  gpsUC,
		logger: logger,
	}
}

// Resolve godoc
// @Summary Разрешение GPS координат
// @Description Определяет freguesia, concelho и distrito, содержащие точку
// @Tags GPS
// @Produce json
// @Param coords path string true "Координаты в форме lat,lon"
// @Success 200 {object} utils.SuccessResponse{data=dto.GPSResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /gps/{coords} [get]
func (h *GPSHandler) Resolve(c *fiber.Ctx) error {
	lat, lon, err := parseCoords(c.Params("coords"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.gpsUC.Resolve(c.Context(), lat, lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ResolveQuery godoc
// @Summary Разрешение GPS координат (query-форма)
// @Description То же, что /gps/{lat},{lon}, но с параметрами запроса
// @Tags GPS
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.GPSResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /gps [get]
func (h *GPSHandler) ResolveQuery(c *fiber.Ctx) error {
	var req dto.GPSRequest
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	req.Lat, req.Lon = lat, lon

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.gpsUC.Resolve(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// parseCoords разбирает сегмент пути "38.72,-9.15"
func parseCoords(raw string) (lat, lon float64, err error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	lat, latErr := strconv.ParseFloat(parts[0], 64)
	lon, lonErr := strconv.ParseFloat(parts[1], 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	return lat, lon, nil
}
