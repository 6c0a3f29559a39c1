// Package logger builds the application's zap logger.
//
// One constructor serves both the CLI and serve mode. Debug level selects
// the development preset and anything else the production preset; the
// configured format picks console or json encoding. Commands log to the
// console by default so output stays readable next to the report text.
//
// # Request correlation
//
// In serve mode every request carries a ray ID (see core/middleware/rayid).
// WithRayID pulls that ID out of the Fiber context and attaches it, so all
// lines logged while handling one request can be grepped together:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Comparison failed", zap.Error(err))
package logger
