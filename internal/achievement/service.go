// Package achievement turns upstream users, libraries and completion records
// into per-user achievement levels.
package achievement

import (
	"context"

	"github.com/sourcegraph/conc/iter"

	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/logger"
	"github.com/osse101/UserAchievements_Go/internal/metrics"
	"github.com/osse101/UserAchievements_Go/internal/upstream"
)

// Service defines the interface for achievement level operations
type Service interface {
	// GetLevel computes one user's level. Unknown users yield domain.NotFoundResult().
	GetLevel(ctx context.Context, userID int) domain.LevelResult
	// ListLevels computes levels for every upstream user, in upstream order.
	ListLevels(ctx context.Context) []domain.LevelResult
	// GetPercentages returns the user's per-game completion, in library order.
	GetPercentages(ctx context.Context, userID int) []domain.PerGamePercentage
	CacheStats() CacheStats
}

// service implements the Service interface
type service struct {
	client upstream.Client
	cache  Cache
	fanOut int
}

// NewService creates a new achievement service.
// A nil cache disables caching and a non-positive fanOut uses the default.
func NewService(client upstream.Client, cache Cache, fanOut int) Service {
	if cache == nil {
		cache = NopCache{}
	}
	if fanOut <= 0 {
		fanOut = DefaultFanOutConcurrency
	}
	return &service{
		client: client,
		cache:  cache,
		fanOut: fanOut,
	}
}

func (s *service) GetLevel(ctx context.Context, userID int) domain.LevelResult {
	if cached, ok := s.cache.GetUserLevel(userID); ok {
		return cached
	}

	log := logger.FromContext(ctx)

	user := s.client.GetUser(ctx, userID)
	if !user.Valid() {
		log.Debug(LogMsgUserNotFound, logger.AttrKeyUserID, userID)
		return domain.NotFoundResult()
	}

	level := LevelFor(s.GetPercentages(ctx, user.ID))
	metrics.LevelsComputed.WithLabelValues(level.String()).Inc()

	result := domain.LevelResult{
		UserID: user.ID,
		Name:   user.Name,
		Level:  level,
	}
	if cacheable(ctx) {
		s.cache.SetUserLevel(result)
	}

	log.Debug(LogMsgLevelComputed, logger.AttrKeyUserID, user.ID, logger.AttrKeyLevel, level)
	return result
}

func (s *service) ListLevels(ctx context.Context) []domain.LevelResult {
	if cached, ok := s.cache.GetAllLevels(); ok {
		return cached
	}

	users := s.client.ListUsers(ctx)

	mapper := iter.Mapper[domain.User, domain.LevelResult]{MaxGoroutines: s.fanOut}
	computed := mapper.Map(users, func(u *domain.User) domain.LevelResult {
		return s.GetLevel(ctx, u.ID)
	})

	results := make([]domain.LevelResult, 0, len(computed))
	for i, r := range computed {
		if !r.Found() {
			logger.FromContext(ctx).Warn(LogMsgDroppedNotFound, logger.AttrKeyUserID, users[i].ID)
			continue
		}
		results = append(results, r)
	}

	if cacheable(ctx) {
		s.cache.SetAllLevels(results)
	}
	logger.FromContext(ctx).Debug(LogMsgLevelsListed, "users", len(users), "results", len(results))
	return results
}

func (s *service) GetPercentages(ctx context.Context, userID int) []domain.PerGamePercentage {
	if cached, ok := s.cache.GetAchievements(userID); ok {
		return cached
	}

	library := s.client.GetLibrary(ctx, userID)

	mapper := iter.Mapper[domain.Game, domain.PerGamePercentage]{MaxGoroutines: s.fanOut}
	percentages := mapper.Map(library.OwnedGames, func(g *domain.Game) domain.PerGamePercentage {
		record := s.client.GetCompletion(ctx, userID, g.ID)
		return domain.PerGamePercentage{
			UserID:                userID,
			GameID:                g.ID,
			AchievementPercentage: CompletionPercentage(record.TotalCompletedAchievements, record.Game.TotalAvailableAchievements),
		}
	})
	if percentages == nil {
		percentages = []domain.PerGamePercentage{}
	}

	if cacheable(ctx) {
		s.cache.SetAchievements(userID, percentages)
	}
	return percentages
}

// cacheable reports whether results computed under ctx may be cached.
// Upstream calls made after cancellation degrade to empty values.
func cacheable(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		logger.FromContext(ctx).Debug(LogMsgCacheSkipped, logger.AttrKeyError, err)
		return false
	}
	return true
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}
