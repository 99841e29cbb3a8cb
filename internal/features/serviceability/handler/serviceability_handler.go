package handler

import (
	"errors"

	"proculator/internal/features/serviceability/domain"
	"proculator/internal/features/serviceability/service"

	"github.com/gofiber/fiber/v2"
)

// ServiceabilityHandler handles HTTP requests for the serviceability table.
type ServiceabilityHandler struct {
	serviceabilityService *service.ServiceabilityService
}

// NewServiceabilityHandler creates a new ServiceabilityHandler.
func NewServiceabilityHandler(serviceabilityService *service.ServiceabilityService) *ServiceabilityHandler {
	return &ServiceabilityHandler{
		serviceabilityService: serviceabilityService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// UploadResponse summarizes an accepted table upload.
type UploadResponse struct {
	// Accepted is the number of rows stored.
	Accepted int `json:"accepted"`
	// Skipped is the number of rows dropped for a bad pincode.
	Skipped int `json:"skipped"`
}

// Upload godoc
// @Summary Upload a serviceability table
// @Description Ingests a delimited pincode serviceability table, replacing any previously loaded one
// @Tags serviceability
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Delimited table with a header row"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Router /serviceability [post]
func (h *ServiceabilityHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "file is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "failed to open uploaded file",
			RayID:   c.Locals("requestid").(string),
		})
	}
	defer file.Close()

	result, err := h.serviceabilityService.Ingest(c.UserContext(), file)
	if err != nil {
		if errors.Is(err, domain.ErrMissingPincodeColumn) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "table has no pincode column",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(UploadResponse{
		Accepted: result.Accepted,
		Skipped:  result.Skipped,
	})
}

// GetRecord godoc
// @Summary Get the serviceability record for a pincode
// @Tags serviceability
// @Produce json
// @Param pincode path string true "Pincode"
// @Success 200 {object} domain.Record
// @Failure 404 {object} ErrorResponse
// @Router /serviceability/{pincode} [get]
func (h *ServiceabilityHandler) GetRecord(c *fiber.Ctx) error {
	pincode := c.Params("pincode")
	if pincode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "pincode is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	rec, err := h.serviceabilityService.Lookup(c.UserContext(), pincode)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "no record for pincode",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(rec)
}

// Clear godoc
// @Summary Remove the loaded serviceability table
// @Description Quoting then proceeds as if no table was ever uploaded
// @Tags serviceability
// @Produce json
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /serviceability [delete]
func (h *ServiceabilityHandler) Clear(c *fiber.Ctx) error {
	if err := h.serviceabilityService.Clear(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
