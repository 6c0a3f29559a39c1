package logger

import (
	"photo-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Debug level selects zap's development
// preset, everything else starts from the production preset; the encoding
// follows the configured format independently of the level.
func New(cfg *Config) (*zap.Logger, error) {
	config := presetFor(cfg.Level)

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// Stack traces drown the one-line console output.
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// presetFor maps the configured level to a zap preset. Unknown levels keep
// the production default (info) rather than failing startup.
func presetFor(level string) zap.Config {
	if level == "debug" {
		return zap.NewDevelopmentConfig()
	}
	config := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config
}

// WithRayID attaches the request's ray ID so every line logged while
// handling one request carries the same id.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayid.LocalsKey).(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
