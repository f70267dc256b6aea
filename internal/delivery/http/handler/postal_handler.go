package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/pkg/utils"
	"github.com/geoapi-pt/internal/usecase"
)

// PostalHandler - обработчик запросов по почтовым кодам
type PostalHandler struct {
	postalUC *usecase.PostalUseCase
	logger   *zap.Logger
}

func NewPostalHandler(postalUC *usecase.PostalUseCase, logger *zap.Logger) *PostalHandler {
	return &PostalHandler{
		postalUC: postalUC,
		logger:   logger,
	}
}

// Lookup godoc
// @Summary Геоданные почтового кода
// @Description Возвращает адресные точки, центры и границу кода. Принимает "1950-449", "1950449" или префикс "1950".
// @Tags Postal
// @Produce json
// @Param code path string true "Почтовый код"
// @Success 200 {object} utils.SuccessResponse{data=dto.PostalResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /cp/{code} [get]
func (h *PostalHandler) Lookup(c *fiber.Ctx) error {
	result, err := h.postalUC.Lookup(c.Context(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
