// Package middleware holds the Fiber middleware shared by serve mode.
//
// Three concerns live here, each in its own subpackage:
//
//   - rayid tags each request with a ray ID, honoring one supplied by an
//     upstream proxy, and stores it where logger.WithRayID can find it.
//   - requestlog writes one zap line per request, carrying the ray ID,
//     method, path, status and duration.
//   - auth rejects requests that do not carry the configured API key in
//     X-API-Key. An empty key disables the check.
//
// The serve command installs them in that order, so even rejected requests
// are logged and traceable.
package middleware
