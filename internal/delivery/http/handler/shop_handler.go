package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/pkg/utils"
	"github.com/shopcrawl-service/internal/pkg/validator"
	"github.com/shopcrawl-service/internal/usecase"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

// ShopHandler exposes keyword place search over HTTP.
type ShopHandler struct {
	searchUC *usecase.ShopSearchUseCase
	logger   *zap.Logger
}

func NewShopHandler(searchUC *usecase.ShopSearchUseCase, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// FindShops godoc
// @Summary Search shops by keyword
// @Description Finds places matching the keywords, optionally anchored near a point. Hits are sorted by distance from the anchor and tagged with the detected chain brand.
// @Tags Shops
// @Accept json
// @Produce json
// @Param request body dto.FindShopsRequest true "Keywords and optional anchor point"
// @Success 200 {object} utils.SuccessResponse{data=dto.FindShopsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/shops/find [post]
func (h *ShopHandler) FindShops(c *fiber.Ctx) error {
	var req dto.FindShopsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.FindShops(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
