package tracker

import (
	"equipment-tracker/core/gate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the tracker feature. The archive may be nil when the
// receipt archive is disabled.
func NewFeature(db *gorm.DB, g *gate.Gate, archive *ReceiptArchive, logger *zap.Logger) (*Feature, error) {
	store, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	svc := NewService(store, g, archive, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tracker"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
