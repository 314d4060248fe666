package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/pkg/utils"
	"github.com/shopcrawl-service/internal/pkg/validator"
	"github.com/shopcrawl-service/internal/usecase"
	"github.com/shopcrawl-service/internal/usecase/dto"
)

// PlanHandler exposes the route planner over HTTP.
type PlanHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

func NewPlanHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC: planUC,
		logger: logger,
	}
}

// Plan godoc
// @Summary Compute ranked multi-stop routes
// @Description Resolves the shop list to concrete places, expands chain brands into nearby branches, evaluates the branch combinations and returns the five best routes by time and by distance.
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Home location, shops to visit and travel mode"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/plan [post]
func (h *PlanHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	started := time.Now()
	result, err := h.planUC.Plan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.ByTime) + len(result.ByDistance),
		TimeMSec: float64(time.Since(started).Milliseconds()),
	})
}

// State godoc
// @Summary Current planner phase
// @Description Reports which phase the single in-flight plan request is in, or idle.
// @Tags Plan
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/route/state [get]
func (h *PlanHandler) State(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"state": string(h.planUC.State()),
	}, nil)
}
