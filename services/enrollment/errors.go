package enrollment

import "errors"

// Business errors surfaced to the presentation layer. Each maps to a distinct
// user-facing message, so they stay separate sentinels rather than one
// generic failure.
var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCapacityExceeded = errors.New("module is full")
	ErrAlreadyEnrolled  = errors.New("user is already enrolled in this module")

	// ErrTransient is returned when storage-level conflicts persisted through
	// every retry attempt. Callers may retry the whole request later.
	ErrTransient = errors.New("transient storage failure")
)

// IsClientError reports whether err is one of the business errors that must
// not be retried by the service.
func IsClientError(err error) bool {
	return errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrAlreadyEnrolled)
}
