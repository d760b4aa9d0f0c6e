package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/UserAchievements_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobSkipped   = "Scheduled job skipped, worker queue full"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
// When runNow is set the job is also enqueued immediately.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job, runNow bool) {
	slog.Info(LogMsgJobScheduled, "job", name, "interval", interval, "run_now", runNow)
	if runNow {
		s.enqueue(name, job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

// enqueue never blocks the ticker loop; a run is skipped if the previous one is still queued
func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.workerPool.Enqueue(job) {
		slog.Warn(LogMsgJobSkipped, "job", name)
	}
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
