package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvUsersAPIBaseURL,
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that work but are unlikely to be intended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	env := os.Getenv(EnvEnvironment)
	if u, err := url.Parse(os.Getenv(EnvUsersAPIBaseURL)); err == nil && u.Scheme == "http" && env == "prod" {
		warnings = append(warnings, "USERS_API_BASE_URL uses plain http in production")
	}

	if env == "prod" && os.Getenv(EnvAdminAPIKey) == "" {
		warnings = append(warnings, "ADMIN_API_KEY is not set - admin routes are unauthenticated in production")
	}

	for _, origin := range getEnvAsList(EnvCORSAllowedOrigins, "") {
		if origin == "*" {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows every origin")
			break
		}
	}

	if enabled := os.Getenv(EnvCacheEnabled); enabled != "" && !getEnvAsBool(EnvCacheEnabled, true) {
		warnings = append(warnings, "CACHE_ENABLED is false - every request fans out to the upstream API")
	}

	return warnings, nil
}
