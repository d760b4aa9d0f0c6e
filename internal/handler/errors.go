package handler

// Client-facing error messages. They never expose upstream error details.
const (
	ErrMsgUserNotFound        = "User not found"
	ErrMsgInvalidUserID       = "Invalid user id"
	ErrMsgUpstreamUnavailable = "upstream users API unavailable"
)

// Response headers and values
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgInvalidUserID   = "Rejected invalid user id"
	LogMsgUserNotFound    = "User level lookup found no user"
	LogMsgListedLevels    = "Listed user levels"
	LogMsgReadinessFailed = "Readiness check failed"
)

// URL parameter names
const (
	ParamUserID = "id"
)
