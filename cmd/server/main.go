package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/config"
	"github.com/classdesk/classdesk-backend/internal/database"
	"github.com/classdesk/classdesk-backend/internal/handler"
	"github.com/classdesk/classdesk-backend/internal/logger"
	"github.com/classdesk/classdesk-backend/internal/router"
	"github.com/classdesk/classdesk-backend/internal/service"
	"github.com/classdesk/classdesk-backend/internal/store"
	"github.com/classdesk/classdesk-backend/internal/validator"
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
		Msg("Starting Classdesk API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to the Key-Value Backend ──────────────────────────────
	// Without REDIS_URL the server still boots: the health check and the
	// static site work, data routes answer 500 naming the binding.
	var kv store.KV
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set; data routes unavailable until the storage backend is bound")
	} else {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		kv = store.NewRedisKV(rdb)
	}

	// ─── Initialize Stores and Services ────────────────────────────────
	records := store.NewRecords(kv, log)
	index := store.NewIndex(kv, log)

	assignmentService := service.NewAssignmentService(records, index, log)
	submissionService := service.NewSubmissionService(records, index, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		System:     handler.NewSystemHandler(cfg.ServiceName),
		Assignment: handler.NewAssignmentHandler(assignmentService),
		Submission: handler.NewSubmissionHandler(submissionService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, kv, cfg, log)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
