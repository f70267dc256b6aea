package handler

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/utils"
	"github.com/geoapi-pt/internal/usecase"
)

// RegistryHandler - обработчик справочных запросов по загруженным
// таблицам регионов
type RegistryHandler struct {
	registryUC *usecase.RegistryUseCase
	logger     *zap.Logger
}

func NewRegistryHandler(registryUC *usecase.RegistryUseCase, logger *zap.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUC: registryUC,
		logger:     logger,
	}
}

// Distritos godoc
// @Summary Список округов
// @Tags Registry
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.RegionSummary}
// @Router /distritos [get]
func (h *RegistryHandler) Distritos(c *fiber.Ctx) error {
	distritos := h.registryUC.Distritos()
	return utils.SendSuccess(c, distritos, &utils.Meta{Total: len(distritos)})
}

// Distrito godoc
// @Summary Поиск округа по имени
// @Tags Registry
// @Produce json
// @Param name path string true "Имя или подстрока имени"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /distrito/{name} [get]
func (h *RegistryHandler) Distrito(c *fiber.Ctx) error {
	return h.find(c, domain.LevelDistrito)
}

// Municipio godoc
// @Summary Поиск муниципалитета (concelho) по имени
// @Tags Registry
// @Produce json
// @Param name path string true "Имя или подстрока имени"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /municipio/{name} [get]
func (h *RegistryHandler) Municipio(c *fiber.Ctx) error {
	return h.find(c, domain.LevelConcelho)
}

// Freguesia godoc
// @Summary Поиск прихода (freguesia) по имени
// @Tags Registry
// @Produce json
// @Param name path string true "Имя или подстрока имени"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /freguesia/{name} [get]
func (h *RegistryHandler) Freguesia(c *fiber.Ctx) error {
	return h.find(c, domain.LevelFreguesia)
}

// Health godoc
// @Summary Проверка живости сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *RegistryHandler) Health(c *fiber.Ctx) error {
	freguesias, concelhos, distritos := h.registryUC.Counts()
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
		"regions": fiber.Map{
			"freguesias": freguesias,
			"concelhos":  concelhos,
			"distritos":  distritos,
		},
	})
}

// find возвращает единственное совпадение объектом, несколько - массивом
func (h *RegistryHandler) find(c *fiber.Ctx, level domain.RegionLevel) error {
	query, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		query = c.Params("name")
	}

	matches, err := h.registryUC.Find(level, query)
	if err != nil {
		return utils.SendError(c, err)
	}

	if len(matches) == 1 {
		return utils.SendSuccess(c, matches[0], nil)
	}
	return utils.SendSuccess(c, matches, &utils.Meta{Total: len(matches)})
}
