package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"boketto-bot/config"
	telegram "boketto-bot/internal/api"
	"boketto-bot/internal/container"
	"boketto-bot/internal/domain/port"
	"boketto-bot/internal/infrastructure/catalog"
	"boketto-bot/internal/infrastructure/otp"
	"boketto-bot/internal/infrastructure/receipt"
	"boketto-bot/internal/infrastructure/recommender"
	"boketto-bot/internal/infrastructure/scheduler"
	"boketto-bot/internal/infrastructure/storage"
	"boketto-bot/internal/metrics"
	"boketto-bot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New("boketto", cfg.LogDir, cfg.Debug)
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Создаём хранилище сессий
	var sessions port.SessionRepository
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logg.Fatal("redis is unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		sessions = storage.NewRedisSessionRepository(client, cfg.SessionTTL)
		logg.Info("sessions stored in redis", zap.String("addr", cfg.RedisAddr))
	} else {
		sessions = storage.NewMemorySessionRepository()
		logg.Info("sessions stored in memory")
	}

	var rec port.Recommender = recommender.Unavailable{}
	if cfg.LLMAPIKey != "" {
		rec = recommender.NewChatClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel, logg)
	} else {
		logg.Warn("LLM_API_KEY is not set, suggestions are disabled")
	}

	timers := scheduler.NewTimerScheduler()
	defer timers.Stop()

	// Собираем сервисы приложения
	appContainer := container.New(container.Deps{
		Sessions:     sessions,
		Orders:       storage.NewMemoryOrderRepository(),
		Recommender:  rec,
		Verifier:     otp.NewMockVerifier(cfg.OTPCode, cfg.OTPReturningCode),
		Receipt:      receipt.NewQREncoder(cfg.OrderBaseURL),
		Scheduler:    timers,
		Catalog:      catalog.Dishes(),
		SortMenu:     scheduler.NewDebouncer(timers, cfg.SortMenuIdle),
	}, logg)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logg.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logg.Info("metrics exposed", zap.String("addr", cfg.MetricsAddr))
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logg)
	if err != nil {
		logg.Fatal("failed to create bot", zap.Error(err))
	}

	logg.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		logg.Error("bot stopped with error", zap.Error(err))
	}
	logg.Info("bot stopped")
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}
