package compendium

import (
	"context"
	"fmt"

	"srd-mirror/core/syncer"

	"go.uber.org/zap"
)

// Service dispatches sync requests to the engine, parameterized by the
// resource's descriptor. Pure dispatch; the engine owns the pipeline.
type Service struct {
	engine      *syncer.Engine
	logger      *zap.Logger
	descriptors map[string]syncer.Descriptor
}

// NewService creates the compendium service with the full descriptor registry.
func NewService(engine *syncer.Engine, logger *zap.Logger) *Service {
	return &Service{
		engine:      engine,
		logger:      logger,
		descriptors: Registry(),
	}
}

// Resources returns every resource name in the dependency-respecting
// trigger order.
func (s *Service) Resources() []string {
	return append([]string(nil), syncOrder...)
}

// Tables returns every parent and child table the descriptors write to,
// for schema presence checks.
func (s *Service) Tables() []string {
	var tables []string
	for _, name := range syncOrder {
		d := s.descriptors[name]
		tables = append(tables, d.Table)
		for _, ct := range d.Children {
			tables = append(tables, ct.Table)
		}
	}
	return tables
}

// Sync mirrors one resource by name.
func (s *Service) Sync(ctx context.Context, resource string) (*syncer.Report, error) {
	d, ok := s.descriptors[resource]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
	return s.engine.Sync(ctx, d)
}
