package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/repositories"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *HistoryHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Analysis not found",
			})
		}
		return err
	}

	return c.JSON(analysis)
}

// HandleListAnalyses handles GET /analyses?limit=N
func (h *HistoryHandler) HandleListAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 100",
		})
	}

	analyses, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return err
	}

	return c.JSON(models.HistoryResponse{
		Analyses: analyses,
		Count:    len(analyses),
	})
}
