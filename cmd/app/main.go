// @title User Achievements API
// @version 1.0
// @description Computes per-user achievement levels from an upstream users API.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/UserAchievements_Go/docs"
	"github.com/osse101/UserAchievements_Go/internal/achievement"
	"github.com/osse101/UserAchievements_Go/internal/config"
	"github.com/osse101/UserAchievements_Go/internal/handler"
	"github.com/osse101/UserAchievements_Go/internal/scheduler"
	"github.com/osse101/UserAchievements_Go/internal/server"
	"github.com/osse101/UserAchievements_Go/internal/upstream"
	"github.com/osse101/UserAchievements_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	handler.InitValidator()

	retry := upstream.DefaultRetryOptions()
	retry.MaxRetries = cfg.UpstreamMaxRetries
	retry.InitialInterval = cfg.UpstreamRetryInitial
	client := upstream.NewAPIClient(cfg.UsersAPIBaseURL, cfg.UpstreamTimeout, retry)

	var cache achievement.Cache = achievement.NopCache{}
	if cfg.CacheEnabled {
		cache = achievement.NewLRUCache(achievement.CacheConfig{
			Size:            cfg.CacheSize,
			AllLevelsTTL:    cfg.CacheTTLAllUsers,
			UserLevelTTL:    cfg.CacheTTLUser,
			AchievementsTTL: cfg.CacheTTLAchievements,
		})
	}
	levelService := achievement.NewService(client, cache, cfg.FanOutConcurrency)

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	if cfg.CacheEnabled && cfg.CacheWarmInterval > 0 {
		sched.Schedule("cache_warm", cfg.CacheWarmInterval, worker.NewWarmJob(levelService), true)
	}

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		ServiceName:        cfg.ServiceName,
		Version:            cfg.Version,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminAPIKey:        cfg.AdminAPIKey,
		TrustedProxies:     cfg.TrustedProxies,
	}, levelService, client)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sched.Stop()
	pool.Stop()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		exitCode = 1
	}

	slog.Info("Server stopped")
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
