package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/config"
	"valencia-events/app/database"
	"valencia-events/app/models"
	"valencia-events/app/services"
)

type handler struct {
	store    Store
	pipeline Pipeline
}

// login exchanges the fixed credential pair for the fixed bearer token.
// Both fields are always compared so the response does not reveal which
// one was wrong.
func (h *handler) login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AdminPassword))
	if userOK&passOK != 1 {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	return c.JSON(fiber.Map{
		"token":   config.AdminToken,
		"message": "Login successful",
	})
}

// getConfig returns the singleton admin config.
func (h *handler) getConfig(c *fiber.Ctx) error {
	cfg, err := h.store.GetAdminConfig(c.Context())
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Admin config not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch admin config"})
	}
	return c.JSON(cfg)
}

// updateConfig replaces the stored config wholesale. No field-level
// validation: an empty credential or broken template is accepted here and
// only surfaces later inside the generation pipeline.
func (h *handler) updateConfig(c *fiber.Ctx) error {
	var cfg models.AdminConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.store.SaveAdminConfig(c.Context(), &cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update admin config"})
	}
	return c.JSON(fiber.Map{"message": "Admin config updated successfully"})
}

// generateEvents runs the events pipeline for the requested date range.
func (h *handler) generateEvents(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	events, err := h.pipeline.GenerateEvents(c.Context(), req)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Generated %d events successfully", len(events)),
		"events":  events,
	})
}

// generateSummary runs the summary pipeline for the requested date range.
func (h *handler) generateSummary(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	summary, err := h.pipeline.GenerateSummary(c.Context(), req)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Generated summary successfully",
		"summary": summary,
	})
}

// generationError maps pipeline failures to HTTP: a missing credential is a
// client error, everything else is a server error whose message names the
// failed step (upstream call, reply parse, store write).
func generationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNoAPIKey) {
		return c.Status(400).JSON(fiber.Map{"error": "OpenAI API key not configured"})
	}
	return c.Status(500).JSON(fiber.Map{"error": err.Error()})
}
