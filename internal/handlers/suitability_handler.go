package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-simulator/internal/repositories"
	"alfredoptarigan/interview-simulator/internal/services"
)

type SuitabilityHandler struct {
	suitabilityService services.SuitabilityService
}

func NewSuitabilityHandler(suitabilityService services.SuitabilityService) *SuitabilityHandler {
	return &SuitabilityHandler{
		suitabilityService: suitabilityService,
	}
}

// HandleView handles GET /suitability/view/:upload_id
func (h *SuitabilityHandler) HandleView(c *fiber.Ctx) error {
	uploadID, err := parseUploadID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid upload ID format",
		})
	}

	result, err := h.suitabilityService.View(c.UserContext(), uploadID)
	if err != nil {
		if errors.Is(err, repositories.ErrUploadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Upload not found",
			})
		}
		return err
	}

	return c.JSON(result)
}
