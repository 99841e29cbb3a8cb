package handler

import (
	"errors"

	"proculator/internal/features/pincode/service"

	"github.com/gofiber/fiber/v2"
)

// PincodeHandler handles HTTP requests for pincode resolution.
type PincodeHandler struct {
	lookupService *service.LookupService
}

// NewPincodeHandler creates a new PincodeHandler.
func NewPincodeHandler(lookupService *service.LookupService) *PincodeHandler {
	return &PincodeHandler{
		lookupService: lookupService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Lookup godoc
// @Summary Resolve a pincode to its city and state
// @Description Used to pre-fill quote forms; the rating engine never calls this
// @Tags pincode
// @Produce json
// @Param code path string true "Pincode"
// @Success 200 {object} domain.Location
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /pincode/{code} [get]
func (h *PincodeHandler) Lookup(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "pincode is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	loc, err := h.lookupService.Lookup(c.UserContext(), code)
	if err != nil {
		if errors.Is(err, service.ErrPincodeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "pincode not found",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(loc)
}
