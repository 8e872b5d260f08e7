package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API. history may be nil when the history store
// is disabled, in which case its routes are not mounted.
func RegisterRoutes(app *fiber.App, analyze *AnalyzeHandler, history *HistoryHandler) {
	endpoints := []string{
		"POST /analyze",
		"POST /api/v1/analyze",
		"GET /api/v1/health",
	}

	// Unversioned path kept for existing clients
	app.Post("/analyze", analyze.HandleAnalyze)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyze.HandleAnalyze)

	if history != nil {
		api.Get("/analyses", history.HandleListAnalyses)
		api.Get("/analyses/:id", history.HandleGetAnalysis)
		endpoints = append(endpoints, "GET /api/v1/analyses", "GET /api/v1/analyses/:id")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Smart ATS Resume Matcher API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
