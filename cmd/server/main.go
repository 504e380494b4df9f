package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/database"
	"github.com/smartedurural/smartedu-backend/internal/handler"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/mentor"
	"github.com/smartedurural/smartedu-backend/internal/repository"
	"github.com/smartedurural/smartedu-backend/internal/router"
	"github.com/smartedurural/smartedu-backend/internal/service"
	"github.com/smartedurural/smartedu-backend/internal/validator"
	"github.com/smartedurural/smartedu-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SmartEduRural Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	kv := repository.NewRedisKV(rdb)
	snapshotRepo := repository.NewSnapshotRepository(kv)
	userRepo := repository.NewUserRepository(kv)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo)
	testService, err := service.NewTestService(ctx, snapshotRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load test snapshot")
	}
	summaryService := service.NewSummaryService(testService, authService, userRepo)
	mentorService := service.NewMentorService(cfg, mentor.NewWebClient())

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Test:      handler.NewTestHandler(testService, summaryService),
		Teacher:   handler.NewTeacherHandler(testService, summaryService),
		Dashboard: handler.NewDashboardHandler(summaryService),
		Resource:  handler.NewResourceHandler(rdb),
		Mentor:    handler.NewMentorHandler(mentorService, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	counterWorker := worker.NewResourceCounterWorker(rdb, log)
	go counterWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
