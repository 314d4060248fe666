package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/pkg/errors"
	"github.com/shopcrawl-service/internal/pkg/utils"
	"github.com/shopcrawl-service/internal/pkg/validator"
	"github.com/shopcrawl-service/internal/usecase"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

// TripHandler exposes saved trip CRUD over HTTP.
type TripHandler struct {
	tripUC *usecase.TripUseCase
	logger *zap.Logger
}

func NewTripHandler(tripUC *usecase.TripUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// Save godoc
// @Summary Save a trip
// @Description Persists a named shop list so it can be reloaded into the planner later.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.SaveTripRequest true "Trip name and shop list"
// @Success 200 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/trips [post]
func (h *TripHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveTripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tripUC.Save(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary List saved trips
// @Description Returns saved trips, newest first.
// @Tags Trips
// @Produce json
// @Param limit query int false "Maximum number of trips" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.TripListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	result, err := h.tripUC.List(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByID godoc
// @Summary Get one saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.tripUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.tripUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}
