package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the history feature. It is disabled when repo is nil.
func NewFeature(repo *Repository, logger *zap.Logger) *Feature {
	f := &Feature{enabled: repo != nil}
	if repo != nil {
		f.handler = NewHandler(repo, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled reports whether a ledger database is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
