package requestlog

import (
	"time"

	"photo-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that writes one log line per request, tagged with
// the request's ray ID. It logs after the handler returns so the line carries
// the status code and duration.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(log, c).With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("took", time.Since(start)),
		)
		if err != nil {
			// The error handler has not shaped the response at this point,
			// so the final status code is not known here.
			l.Error("Request failed", zap.Error(err))
			return err
		}
		l.Info("Request handled", zap.Int("status", c.Response().StatusCode()))
		return nil
	}
}
