package compare

import (
	"photo-manager/core/reconcile"
	"photo-manager/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the comparison service and its HTTP surface into the server.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature assembles the comparison feature. The history store may be nil
// when run persistence is disabled.
func NewFeature(local, remote reconcile.Scanner, cfg Config, store *history.Store, logger *zap.Logger) *Feature {
	svc := NewService(local, remote, cfg, store, logger)
	return &Feature{service: svc, handler: NewHandler(svc, cfg.Threshold)}
}

func (f *Feature) Name() string {
	return "compare"
}

// IsEnabled reports true; the comparison endpoints are always served.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the comparison routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
