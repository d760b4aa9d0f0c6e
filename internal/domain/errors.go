package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgInvalidUserID = "invalid user id"

	// Level errors
	ErrMsgInvalidLevel = "invalid achievement level"

	// Upstream errors
	ErrMsgUpstreamUnavailable = "upstream unavailable"
	ErrMsgUpstreamStatus      = "upstream returned unexpected status"
	ErrMsgUpstreamDecode      = "failed to decode upstream response"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrInvalidUserID = errors.New(ErrMsgInvalidUserID)

	ErrInvalidLevel = errors.New(ErrMsgInvalidLevel)

	// Upstream errors never leave the upstream package; they tag failures for logging
	// and for the readiness probe.
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)
	ErrUpstreamStatus      = errors.New(ErrMsgUpstreamStatus)
	ErrUpstreamDecode      = errors.New(ErrMsgUpstreamDecode)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
