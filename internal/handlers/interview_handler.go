package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
	"alfredoptarigan/interview-simulator/internal/repositories"
	"alfredoptarigan/interview-simulator/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	logger           *zap.Logger
}

func NewInterviewHandler(interviewService services.InterviewService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		logger:           logger,
	}
}

// HandleStart handles GET /interview/start/:upload_id
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	uploadID, err := parseUploadID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid upload ID format",
		})
	}

	questions, err := h.interviewService.Start(c.UserContext(), uploadID)
	if err != nil {
		if errors.Is(err, repositories.ErrUploadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Upload ID not found",
			})
		}
		return err
	}

	return c.JSON(models.QuestionsResponse{
		UploadID:  uploadID,
		Questions: questions,
	})
}

// HandleSubmit handles POST /interview/submit
func (h *InterviewHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if msg := validateRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing upload_id or answers",
		})
	}

	evaluation, err := h.interviewService.Submit(c.UserContext(), req.UploadID, req.QAList)
	if err != nil {
		if errors.Is(err, repositories.ErrUploadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Upload ID not found",
			})
		}
		h.logger.Error("interview submission failed", zap.Uint("upload_id", req.UploadID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Submit crashed: %v", err),
		})
	}

	return c.JSON(evaluation)
}

// HandleUploadPDFs handles POST /interview/upload_pdfs
func (h *InterviewHandler) HandleUploadPDFs(c *fiber.Ctx) error {
	var req models.UploadPathsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if msg := validateRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	upload, questions, err := h.interviewService.CreateFromPaths(c.UserContext(), req.ResumePath, req.JDPath)
	if err != nil {
		return err
	}

	return c.JSON(models.QuestionsResponse{
		UploadID:  upload.ID,
		Questions: questions,
	})
}

func parseUploadID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("upload_id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("upload id must be positive, got %d", id)
	}
	return uint(id), nil
}
