package worker

import (
	"context"
	"time"

	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/logger"
)

// LevelLister computes levels for every user
type LevelLister interface {
	ListLevels(ctx context.Context) []domain.LevelResult
}

// WarmJob recomputes all user levels so the read-through cache is populated
// before clients ask. It adds no invalidation: entries still expire on their TTLs.
type WarmJob struct {
	Levels LevelLister
}

// NewWarmJob creates a cache warm-up job
func NewWarmJob(levels LevelLister) *WarmJob {
	return &WarmJob{Levels: levels}
}

// Process implements Job
func (j *WarmJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Debug(LogMsgWarmStarting)

	results := j.Levels.ListLevels(ctx)

	log.Info(LogMsgWarmCompleted, "users", len(results), "duration_ms", time.Since(start).Milliseconds())
	return ctx.Err()
}
