package compendium

import (
	"fmt"

	"srd-mirror/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for compendium syncs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers one trigger endpoint per resource.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	for _, resource := range h.service.Resources() {
		app.Get("/sync-"+resource, h.handleSync(resource))
	}
}

// handleSync triggers a full sync of one resource.
// @Summary Sync a resource
// @Description Mirrors one SRD resource from the upstream API into the local database.
// @Tags compendium
// @Produce json
// @Success 200 {object} map[string]any "Sync report"
// @Failure 500 {object} map[string]any "First error encountered"
// @Router /sync-{resource} [get]
func (h *Handler) handleSync(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		report, err := h.service.Sync(c.Context(), resource)
		if err != nil {
			l.Error("Resource sync failed", zap.String("resource", resource), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("%s synced successfully! %d records processed.", resource, report.Synced),
		})
	}
}
