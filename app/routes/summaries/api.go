package summaries

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/database"
	"valencia-events/app/models"
)

type handler struct {
	store Store
}

// getSummaries returns all summaries.
func (h *handler) getSummaries(c *fiber.Ctx) error {
	summaries, err := h.store.ListSummaries(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch summaries"})
	}
	if summaries == nil {
		summaries = []models.Summary{}
	}
	return c.JSON(summaries)
}

// getLatestSummary returns the summary with the newest creation timestamp.
func (h *handler) getLatestSummary(c *fiber.Ctx) error {
	summary, err := h.store.LatestSummary(c.Context())
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "No summary found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch latest summary"})
	}
	return c.JSON(summary)
}
