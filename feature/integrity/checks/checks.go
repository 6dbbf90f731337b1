package checks

import "errors"

// ErrNotConfigured is returned when the backend of a check is not available.
var ErrNotConfigured = errors.New("backend not configured")

// Report statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusInvalid = "invalid"
	StatusSkipped = "skipped"
)
