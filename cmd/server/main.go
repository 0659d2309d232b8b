package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hichamcc/Memory-Training-Game/internal/api"
	"github.com/hichamcc/Memory-Training-Game/internal/config"
	"github.com/hichamcc/Memory-Training-Game/internal/db"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/repository"
	"github.com/hichamcc/Memory-Training-Game/internal/repository/sqlite"
	"github.com/hichamcc/Memory-Training-Game/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Memory Training Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("max_active_sessions=%d", cfg.MaxActiveSessions)

	// Open database. Practice works without it; only high scores and the
	// session log are lost, so a failure degrades storage instead of
	// refusing to start.
	var resultsRepo repository.ResultsRepository
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Warn("failed to open database, running without persistence: %v", err)
		resultsRepo = repository.NewNoopResultsRepository()
	} else {
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()
		resultsRepo = sqlite.NewResultsRepository(database.DB)
	}

	tacticService := services.NewTacticService()
	practiceService := services.NewPracticeService(
		resultsRepo,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		cfg.MaxActiveSessions,
	)
	resultsService := services.NewResultsService(resultsRepo)

	srv := &api.Server{
		Tactics:  tacticService,
		Practice: practiceService,
		Results:  resultsService,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Memory Training Server Stopped")
	log.Info("===========================================")
}
