package library

import "errors"

// Error kinds raised by scanners and credential providers. Failures are
// wrapped with context naming the failing side; callers classify them with
// errors.Is.
var (
	// ErrAccess reports a local source root that is missing or unreadable.
	// Never retried; the configured path needs fixing.
	ErrAccess = errors.New("source path not accessible")

	// ErrAuth reports absent, expired, or rejected remote credentials.
	// Never retried; the user has to re-authenticate.
	ErrAuth = errors.New("authentication failed")

	// ErrTransient reports a retryable remote failure. Scanners retry these
	// internally with bounded backoff before surfacing them.
	ErrTransient = errors.New("transient source failure")

	// ErrValidation reports a malformed album record caught at the boundary,
	// before it can reach the matching engine.
	ErrValidation = errors.New("invalid album record")
)
