package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns version information about the application
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(service, configuredVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Service:   service,
			Version:   resolveVersion(configuredVersion),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// resolveVersion prefers the build-time version, then configuration, then "dev"
func resolveVersion(configured string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configured != "" {
		return configured
	}
	return "dev"
}
