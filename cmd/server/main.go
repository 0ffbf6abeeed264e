package main

import (
	"context"
	"fmt"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jayvaglio/online-presence-app/internal/common/cache"
	"github.com/jayvaglio/online-presence-app/internal/common/config"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/common/observability"
	"github.com/jayvaglio/online-presence-app/internal/presence/assess"
	"github.com/jayvaglio/online-presence-app/internal/presence/reviews"
	"github.com/jayvaglio/online-presence-app/internal/presence/source"
	"github.com/jayvaglio/online-presence-app/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	// Bootstrap logger for startup; replaced once config is loaded.
	zapLog := logger.New("info", "console")

	zapLog.Info("Starting presence server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog.Sync()
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis (optional) ---
	// An unreachable cache never blocks startup; the server runs uncached.
	var redisClient *cache.RedisClient
	if cfg.Cache.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = cache.NewRedis(cfg.Cache.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, running without result cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			zapLog.Info("Redis connected successfully")
		}
	}

	src := source.Select(*cfg, redisClient, log)
	if cfg.Search.ProviderConfigured() {
		zapLog.Info("search provider configured")
	} else {
		zapLog.Warn("no search provider credential, serving deterministic fallback results")
	}

	var collector assess.ReviewCollector
	if cfg.Reviews.Enabled && cfg.Search.ProviderConfigured() {
		collector = reviews.NewCollector(cfg.Reviews, src, log)
		zapLog.Info("review collection enabled")
	}

	handler := assess.NewHandler(*cfg, src, collector, log)
	srv := server.New(*cfg, handler, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("server stopped")
}
