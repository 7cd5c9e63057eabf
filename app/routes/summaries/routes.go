package summaries

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/models"
)

// Store is the slice of the database layer the summaries API reads from.
type Store interface {
	ListSummaries(ctx context.Context) ([]models.Summary, error)
	LatestSummary(ctx context.Context) (*models.Summary, error)
}

// SetupSummariesRoutes registers the public summaries endpoints.
func SetupSummariesRoutes(app *fiber.App, store Store) {
	h := &handler{store: store}

	api := app.Group("/api/summaries")
	api.Get("/", h.getSummaries)
	api.Get("/latest", h.getLatestSummary)
}
