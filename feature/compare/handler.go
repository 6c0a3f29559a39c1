package compare

import (
	"errors"
	"strconv"

	"photo-manager/core/library"
	"photo-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service          *Service
	defaultThreshold float64
}

// NewHandler builds the handler around the compare service.
func NewHandler(service *Service, defaultThreshold float64) *Handler {
	return &Handler{service: service, defaultThreshold: defaultThreshold}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("/", h.HandleCompare)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleCompare runs a comparison and returns the report. The threshold
// query parameter overrides the configured similarity threshold for this
// request only.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	threshold := h.defaultThreshold
	if q := c.Query("threshold"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "threshold must be a number between 0 and 1",
			})
		}
		threshold = v
	}

	report, err := h.service.RunCached(c.Context(), threshold)
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleRefresh drops the scan snapshot so the next comparison rescans both
// sides.
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	h.service.Invalidate()
	return c.JSON(fiber.Map{"status": "cache invalidated"})
}

// statusFor maps scan and validation failures onto HTTP status codes. Bad
// input is the caller's fault, credential and remote failures are gateway
// conditions.
func statusFor(err error) int {
	switch {
	case errors.Is(err, library.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, library.ErrAuth):
		return fiber.StatusBadGateway
	case errors.Is(err, library.ErrTransient):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
