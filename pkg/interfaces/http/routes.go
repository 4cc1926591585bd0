package http

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the metric endpoints on the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/healthz", h.Healthz)

	api := app.Group("/api")
	api.Get("/report", h.GetReport)
	api.Get("/inventory", h.GetInventory)
	api.Get("/schedule", h.GetSchedule)
	api.Get("/capacity/production", h.GetProductionCapacity)
	api.Get("/capacity/qc", h.GetQCCapacity)
	api.Post("/cache/refresh", h.RefreshCache)
}
