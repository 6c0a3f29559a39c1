package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature exposes stored comparison runs over HTTP.
type Feature struct {
	store   *Store
	handler *Handler
	enabled bool
}

// NewFeature assembles the history feature. It disables itself when history
// is turned off in the config or no database is connected.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	store := NewStore(db, logger)
	h := NewHandler(store, cfg.Limit)
	return &Feature{store: store, handler: h, enabled: cfg.Enabled && db != nil}
}

// Store exposes the underlying run store so other features can persist runs.
// It returns nil while the feature is disabled.
func (f *Feature) Store() *Store {
	if !f.enabled {
		return nil
	}
	return f.store
}

func (f *Feature) Name() string {
	return "history"
}

func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load migrates the run table, verifies the resulting schema and registers
// the history routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(); err != nil {
		return err
	}
	if err := f.store.VerifySchema(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
