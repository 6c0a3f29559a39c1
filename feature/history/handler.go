package history

import (
	"errors"
	"strconv"

	"photo-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	store *Store
	limit int
}

// NewHandler builds the handler around the run store.
func NewHandler(store *Store, limit int) *Handler {
	return &Handler{store: store, limit: limit}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleListRuns)
	group.Get("/:run_id", h.HandleGetRun)
}

// HandleListRuns returns recent comparison runs, newest first. The limit
// query parameter overrides the configured default.
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.logger, c)

	limit := h.limit
	if q := c.Query("limit"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a positive integer",
			})
		}
		limit = v
	}

	runs, err := h.store.Recent(c.Context(), limit)
	if err != nil {
		l.Error("Listing comparison runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if runs == nil {
		runs = []ComparisonRun{}
	}
	return c.JSON(runs)
}

// HandleGetRun returns the full report document for a single run.
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.logger, c)
	runID := c.Params("run_id")

	run, err := h.store.Get(c.Context(), runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "run not found",
			})
		}
		l.Error("Loading comparison run failed", zap.Error(err), zap.String("run_id", runID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// The stored document is already JSON, replay it verbatim.
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(run.Report)
}
