package events

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/models"
)

// Store is the slice of the database layer the events API reads from.
type Store interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	EventsByDate(ctx context.Context, date string) ([]models.Event, error)
}

// SetupEventsRoutes registers the public events endpoints.
func SetupEventsRoutes(app *fiber.App, store Store) {
	h := &handler{store: store}

	api := app.Group("/api/events")
	api.Get("/", h.getEvents)
	api.Get("/date/:date", h.getEventsByDate)
	api.Get("/:id", h.getEvent)
}
