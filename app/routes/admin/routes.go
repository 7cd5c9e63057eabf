package admin

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"valencia-events/app/config"
	"valencia-events/app/models"
)

// Store is the slice of the database layer the admin API uses.
type Store interface {
	GetAdminConfig(ctx context.Context) (*models.AdminConfig, error)
	SaveAdminConfig(ctx context.Context, cfg *models.AdminConfig) error
}

// Pipeline is the generation workflow behind the generate endpoints.
type Pipeline interface {
	GenerateEvents(ctx context.Context, req models.GenerateRequest) ([]models.Event, error)
	GenerateSummary(ctx context.Context, req models.GenerateRequest) (*models.Summary, error)
}

// SetupAdminRoutes registers the admin endpoints. Everything except login
// sits behind the bearer-token middleware.
func SetupAdminRoutes(app *fiber.App, store Store, pipeline Pipeline) {
	h := &handler{store: store, pipeline: pipeline}

	api := app.Group("/api/admin")
	api.Post("/login", h.login)

	api.Use(AuthMiddleware)
	api.Get("/config", h.getConfig)
	api.Put("/config", h.updateConfig)
	api.Post("/generate-events", h.generateEvents)
	api.Post("/generate-summary", h.generateSummary)
}

// AuthMiddleware checks the Authorization header against the static admin
// token. Mismatch or absence rejects the request before any handler runs.
func AuthMiddleware(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"error": "Missing admin token"})
	}
	token := strings.TrimPrefix(auth, "Bearer ")

	if subtle.ConstantTimeCompare([]byte(token), []byte(config.AdminToken)) != 1 {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid admin token"})
	}
	return c.Next()
}
