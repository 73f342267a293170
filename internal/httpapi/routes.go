package httpapi

import "github.com/gofiber/fiber/v2"

// SetupRoutes mounts the chorddown HTTP façade under /api on app.
func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Get("/health", h.Health)
	api.Post("/convert", h.Convert)
	api.Post("/catalog/build", h.BuildCatalog)
	api.Post("/rsm/replay", h.ReplayLog)
}
