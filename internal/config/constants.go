package config

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvUsersAPIBaseURL      = "USERS_API_BASE_URL"
	EnvUpstreamTimeout      = "UPSTREAM_TIMEOUT"
	EnvUpstreamMaxRetries   = "UPSTREAM_MAX_RETRIES"
	EnvUpstreamRetryInitial = "UPSTREAM_RETRY_INITIAL"
	EnvCacheEnabled         = "CACHE_ENABLED"
	EnvCacheSize            = "CACHE_SIZE"
	EnvCacheTTLAllUsers     = "CACHE_TTL_ALL_USERS"
	EnvCacheTTLUser         = "CACHE_TTL_USER"
	EnvCacheTTLAchievements = "CACHE_TTL_ACHIEVEMENTS"
	EnvCacheWarmInterval    = "CACHE_WARM_INTERVAL"
	EnvFanOutConcurrency    = "FAN_OUT_CONCURRENCY"
	EnvCORSAllowedOrigins   = "CORS_ALLOWED_ORIGINS"
	EnvAdminAPIKey          = "ADMIN_API_KEY"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
)

// Default values
const (
	DefaultPort                 = "8080"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "user-achievements"
	DefaultVersion              = "dev"
	DefaultUpstreamTimeout      = "10s"
	DefaultUpstreamMaxRetries   = 3
	DefaultUpstreamRetryInitial = "200ms"
	DefaultCacheSize            = 1000
	DefaultCacheTTLAllUsers     = "5m"
	DefaultCacheTTLUser         = "2m"
	DefaultCacheTTLAchievements = "3m"
	DefaultFanOutConcurrency    = 8
	DefaultCORSAllowedOrigins   = "http://localhost:5173"
)
