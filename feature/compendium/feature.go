package compendium

import (
	"srd-mirror/core/syncer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the compendium sync endpoints into the application.
type Feature struct {
	service *Service
}

// NewFeature creates the compendium feature.
func NewFeature(engine *syncer.Engine, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(engine, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "compendium"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the sync routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for the CLI sync command.
func (f *Feature) Service() *Service {
	return f.service
}
