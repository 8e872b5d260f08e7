package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/services"
)

const (
	resumeField         = "resume"
	jobDescriptionField = "job_description"
)

// BodyLimit is the request body cap for a given upload limit. It leaves room
// for the multipart envelope and the job description. Bodies above it are
// refused by the server with 413 before HandleAnalyze runs.
func BodyLimit(maxFileSize int64) int {
	return int(maxFileSize) + 1<<20
}

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	resumeFiles, exists := form.File[resumeField]
	if !exists || len(resumeFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	// An empty job description is allowed, a missing field is not.
	jdValues, exists := form.Value[jobDescriptionField]
	if !exists || len(jdValues) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	resumeFile := resumeFiles[0]
	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := resumeFile.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), services.AnalyzeInput{
		Document:       data,
		FileName:       resumeFile.Filename,
		JobDescription: jdValues[0],
	})
	if err != nil {
		if services.IsExtractionError(err) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return err
	}

	return c.JSON(result)
}
