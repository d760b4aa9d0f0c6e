package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/UserAchievements_Go/internal/achievement"
	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/logger"
)

// HandleListUserLevels returns the achievement level of every upstream user
// @Summary List user achievement levels
// @Description Computes the achievement level of every user known to the upstream users API, in upstream order
// @Tags users
// @Produce json
// @Success 200 {array} domain.LevelResult
// @Success 204 "No users"
// @Router /api/users [get]
func HandleListUserLevels(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := svc.ListLevels(r.Context())
		logger.FromContext(r.Context()).Debug(LogMsgListedLevels, "count", len(results))

		if len(results) == 0 {
			respondNoContent(w)
			return
		}
		respondJSON(w, http.StatusOK, results)
	}
}

// HandleGetUserLevel returns the achievement level of a single user
// @Summary Get a user's achievement level
// @Description Computes one user's achievement level from their owned games and completion records
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.LevelResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func HandleGetUserLevel(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		result := svc.GetLevel(r.Context(), userID)
		if !result.Found() {
			logger.FromContext(r.Context()).Info(LogMsgUserNotFound, logger.AttrKeyUserID, userID)
			respondError(w, http.StatusNotFound, ErrMsgUserNotFound)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetUserAchievements returns a user's per-game completion percentages
// @Summary Get a user's per-game completion
// @Description Returns the completion percentage of every game the user owns, in library order (admin diagnostics)
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.PerGamePercentage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/users/{id}/achievements [get]
func HandleGetUserAchievements(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.GetPercentages(r.Context(), userID))
	}
}

// userIDFromPath parses the {id} URL parameter and writes the error response itself on failure
func userIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, ParamUserID)
	userID, err := ParseUserID(raw)
	if err == nil {
		return userID, true
	}

	logger.FromContext(r.Context()).Info(LogMsgInvalidUserID, "raw_id", raw, logger.AttrKeyError, err)
	if errors.Is(err, domain.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, ErrMsgUserNotFound)
	} else {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
	}
	return 0, false
}
