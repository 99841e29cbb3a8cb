package handler

import (
	"errors"

	"proculator/internal/features/rating/service"

	"github.com/gofiber/fiber/v2"
)

// RatingHandler handles HTTP requests for freight quotes.
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Quote godoc
// @Summary Compute a freight cost estimate
// @Description Resolves tariff zones for both legs and returns the fully itemized cost breakdown
// @Tags rating
// @Accept json
// @Produce json
// @Param request body service.QuoteRequest true "Quote request"
// @Success 200 {object} domain.CalculationResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quote [post]
func (h *RatingHandler) Quote(c *fiber.Ctx) error {
	var req service.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	result, err := h.ratingService.Quote(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrZoneIndeterminate) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
				Message: "tariff zone could not be resolved for pickup or drop",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(result)
}
