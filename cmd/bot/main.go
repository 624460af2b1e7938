// File: cmd/bot/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mnogo-rolly-bot/internal/config"
	"mnogo-rolly-bot/internal/format"
	tele "mnogo-rolly-bot/internal/infra/adapters/telegram"
	"mnogo-rolly-bot/internal/infra/logging"
	"mnogo-rolly-bot/internal/infra/metrics"
	"mnogo-rolly-bot/internal/infra/orderapi"
	red "mnogo-rolly-bot/internal/infra/redis"
	"mnogo-rolly-bot/internal/infra/sched"
	sentryutil "mnogo-rolly-bot/internal/infra/sentry"
	"mnogo-rolly-bot/internal/infra/web"
	"mnogo-rolly-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	sentryutil.Init(cfg.Sentry)
	defer sentryutil.Flush()

	metrics.MustRegister()

	// ---- Redis (optional; rate limiting only) ----
	var rateLimiter *red.RateLimiter
	if cfg.Redis.URL != "" {
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis")
		}
		defer redisClient.Close()
		rateLimiter = red.NewRateLimiter(redisClient)
	} else {
		logger.Warn().Msg("redis.url not set; rate limiting disabled")
	}

	// ---- Order API gateway ----
	gw := orderapi.NewClient(&cfg.API, logger)

	// ---- Telegram ----
	botAdapter, err := tele.NewRealBotAdapter(&cfg.Bot, cfg.Format, rateLimiter, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}
	logger.Info().Str("bot", botAdapter.Username()).Msg("authorized on telegram")

	// ---- Relay ----
	relay := usecase.NewNotifyUseCase(gw, botAdapter, cfg.Bot.AdminGroupID, format.Options{Currency: cfg.Format.Currency}, logger)
	botAdapter.AttachRelay(relay)

	go func() {
		if err := botAdapter.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Webhook server ----
	srv := web.NewServer(&cfg.Webhook, relay, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("webhook server error")
		}
	}()

	// ---- Order API health worker ----
	healthWorker := sched.NewHealthWorker(cfg.Health.Interval, gw, logger)
	go func() { _ = healthWorker.Run(ctx) }()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("webhook server shutdown")
	}
	botAdapter.StopPolling()
}
