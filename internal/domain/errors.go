package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrInvalidCategory = errors.New("invalid category: must be simple or urgent")
	ErrInvalidMedium   = errors.New("invalid medium: must be email or sms")
	ErrBodyTooLarge    = errors.New("body exceeds maximum of 4096 bytes")
	ErrNilChannel      = errors.New("message requires a delivery channel")
	ErrUnknownMedium   = errors.New("no channel registered for medium")
	ErrDeliveryFailure = errors.New("delivery failure: sink unavailable")
)
