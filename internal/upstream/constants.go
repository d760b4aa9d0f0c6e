package upstream

import "time"

// Operation names used in logs and metric labels
const (
	OpListUsers     = "list_users"
	OpGetUser       = "get_user"
	OpGetLibrary    = "get_library"
	OpGetCompletion = "get_completion"
	OpPing          = "ping"
)

// Upstream paths
const (
	PathUsers          = "/users"
	PathUserFormat     = "/users/%d"
	PathLibraryFormat  = "/users/%d/library"
	PathCompletionFmt  = "/users/%d/achievements/%d"
	HeaderAccept       = "Accept"
	ContentTypeJSON    = "application/json"
	maxErrorBodyLength = 512
)

// Default client settings
const (
	DefaultTimeout         = 10 * time.Second
	DefaultMaxRetries      = 3
	DefaultInitialInterval = 200 * time.Millisecond
	DefaultMaxInterval     = 2 * time.Second
	DefaultMultiplier      = 2.0
)

// Log messages
const (
	LogMsgRequestFailed   = "Upstream request failed"
	LogMsgRetrying        = "Retrying upstream request"
	LogMsgEmptyBody       = "Upstream returned empty body"
	LogMsgListUsersFailed = "Error fetching users from upstream"
	LogMsgGetUserFailed   = "Error fetching user by ID from upstream"
	LogMsgLibraryFailed   = "Error fetching user library from upstream"
	LogMsgCompletionFail  = "Error fetching user game achievements from upstream"
)
