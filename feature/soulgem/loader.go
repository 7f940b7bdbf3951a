package soulgem

import (
	"yastm-generator/feature/soulgem/filesync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new soul gem feature.
func NewFeature(cfg Config, records RecordStore, fs afero.Fs, target filesync.Target, logger *zap.Logger) *Feature {
	svc := NewService(cfg, records, fs, target, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "soulgem"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.records != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
