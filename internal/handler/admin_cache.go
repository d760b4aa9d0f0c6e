package handler

import (
	"net/http"

	"github.com/osse101/UserAchievements_Go/internal/achievement"
)

// HandleGetCacheStats returns current result cache statistics
// @Summary Get result cache stats
// @Description Returns cache hit/miss statistics for monitoring
// @Tags admin
// @Produce json
// @Success 200 {object} achievement.CacheStats
// @Router /api/admin/cache/stats [get]
func HandleGetCacheStats(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CacheStats())
	}
}
