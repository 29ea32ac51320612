package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/middleware"
	"alfredoptarigan/interview-simulator/internal/models"
	"alfredoptarigan/interview-simulator/internal/repositories"
	"alfredoptarigan/interview-simulator/internal/services"
)

type UploadHandler struct {
	uploadRepo     repositories.UploadRepository
	accountRepo    repositories.AccountRepository
	storageService services.StorageService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewUploadHandler(
	uploadRepo repositories.UploadRepository,
	accountRepo repositories.AccountRepository,
	storageService services.StorageService,
	maxFileSize int64,
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		uploadRepo:     uploadRepo,
		accountRepo:    accountRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

func (h *UploadHandler) HandleUploadForm(c *fiber.Ctx) error {
	return sendForm(c, "upload.html")
}

// HandleUpload handles POST /files/upload
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	ownerID, err := h.resolveOwner(c)
	if err != nil {
		return err
	}

	resumeFiles := form.File["resume"]
	jdFiles := form.File["jd"]
	if len(resumeFiles) == 0 || len(jdFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both 'resume' and 'jd' files are required.",
		})
	}

	resumeFile, jdFile := resumeFiles[0], jdFiles[0]
	for _, f := range []struct {
		label string
		size  int64
	}{{"Resume", resumeFile.Size}, {"Job description", jdFile.Size}} {
		if f.size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s file too large. Max size: %d bytes", f.label, h.maxFileSize),
			})
		}
	}

	folder, err := h.storageService.NewFolder()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resumePath, resumeBlob, err := h.storageService.SaveFile(resumeFile, folder, "resume")
	if err != nil {
		h.cleanup(folder)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	jdPath, jdBlob, err := h.storageService.SaveFile(jdFile, folder, "jd")
	if err != nil {
		h.cleanup(folder)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save job description file: %v", err),
		})
	}

	upload := &models.Upload{
		AccountID:  ownerID,
		ResumePath: resumePath,
		ResumeBlob: resumeBlob,
		JDPath:     jdPath,
		JDBlob:     jdBlob,
	}
	if err := h.uploadRepo.Create(c.UserContext(), upload); err != nil {
		h.cleanup(folder)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save upload record: %v", err),
		})
	}

	h.logger.Info("documents uploaded", zap.Uint("upload_id", upload.ID))

	return c.Redirect(fmt.Sprintf("/suitability/view/%d", upload.ID), fiber.StatusSeeOther)
}

// resolveOwner prefers the explicit user_id form field and falls back to the logged-in account.
func (h *UploadHandler) resolveOwner(c *fiber.Ctx) (*uint, error) {
	raw := strings.TrimSpace(c.FormValue("user_id"))
	if raw == "" {
		if id, ok := middleware.AccountID(c); ok {
			return &id, nil
		}
		return nil, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user_id")
	}

	id := uint(parsed)
	if _, err := h.accountRepo.FindByID(c.UserContext(), id); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	return &id, nil
}

func (h *UploadHandler) cleanup(folder string) {
	if err := h.storageService.DeleteFolder(folder); err != nil {
		h.logger.Warn("failed to clean up upload folder", zap.String("folder", folder), zap.Error(err))
	}
}
