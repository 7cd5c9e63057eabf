package events

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/database"
	"valencia-events/app/models"
)

type handler struct {
	store Store
}

// getEvents returns all events.
func (h *handler) getEvents(c *fiber.Ctx) error {
	events, err := h.store.ListEvents(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(events)
}

// getEvent returns a single event by id.
func (h *handler) getEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEventByID(c.Context(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}
	return c.JSON(event)
}

// getEventsByDate returns the events whose date matches exactly. No match
// is an empty array, not an error.
func (h *handler) getEventsByDate(c *fiber.Ctx) error {
	events, err := h.store.EventsByDate(c.Context(), c.Params("date"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events by date"})
	}
	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(events)
}
