package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/UserAchievements_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Upstream users API
	UsersAPIBaseURL      string        `validate:"required,url"`
	UpstreamTimeout      time.Duration `validate:"gt=0"`
	UpstreamMaxRetries   int           `validate:"min=0,max=10"`
	UpstreamRetryInitial time.Duration `validate:"gt=0"`

	// Result cache
	CacheEnabled         bool
	CacheSize            int           `validate:"min=1"`
	CacheTTLAllUsers     time.Duration `validate:"gt=0"`
	CacheTTLUser         time.Duration `validate:"gt=0"`
	CacheTTLAchievements time.Duration `validate:"gt=0"`
	CacheWarmInterval    time.Duration `validate:"min=0"`

	FanOutConcurrency  int      `validate:"min=1,max=256"`
	CORSAllowedOrigins []string `validate:"dive,required"`

	// AdminAPIKey protects /api/admin when set
	AdminAPIKey    string
	TrustedProxies []string `validate:"dive,ip"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		UsersAPIBaseURL: strings.TrimRight(getEnv(EnvUsersAPIBaseURL, ""), "/"),

		UpstreamMaxRetries: getEnvAsInt(EnvUpstreamMaxRetries, DefaultUpstreamMaxRetries),

		CacheEnabled: getEnvAsBool(EnvCacheEnabled, true),
		CacheSize:    getEnvAsInt(EnvCacheSize, DefaultCacheSize),

		FanOutConcurrency:  getEnvAsInt(EnvFanOutConcurrency, DefaultFanOutConcurrency),
		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),
		AdminAPIKey:        getEnv(EnvAdminAPIKey, ""),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies, ""),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	durations := []struct {
		key    string
		def    string
		target *time.Duration
	}{
		{EnvUpstreamTimeout, DefaultUpstreamTimeout, &cfg.UpstreamTimeout},
		{EnvUpstreamRetryInitial, DefaultUpstreamRetryInitial, &cfg.UpstreamRetryInitial},
		{EnvCacheTTLAllUsers, DefaultCacheTTLAllUsers, &cfg.CacheTTLAllUsers},
		{EnvCacheTTLUser, DefaultCacheTTLUser, &cfg.CacheTTLUser},
		{EnvCacheTTLAchievements, DefaultCacheTTLAchievements, &cfg.CacheTTLAchievements},
		{EnvCacheWarmInterval, "0s", &cfg.CacheWarmInterval},
	}
	for _, d := range durations {
		value, err := getEnvAsDuration(d.key, d.def)
		if err != nil {
			return nil, err
		}
		*d.target = value
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values against their constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean environment variable, falling back on parse errors
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) (time.Duration, error) {
	raw := getEnv(key, defaultValue)
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
