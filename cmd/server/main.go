package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/holocron/api/internal/config"
	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/jobs"
	"github.com/forgo/holocron/api/internal/repository"
	"github.com/forgo/holocron/api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	slog.SetDefault(cfg.NewLogger(os.Stdout))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSQL(database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		QueryTimeout: cfg.Database.QueryTimeout,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to create schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database",
		slog.String("driver", cfg.Database.Driver),
	)

	handler := router.New(router.Config{
		DB:             db,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Start background jobs
	var statsReporter *jobs.TableStatsReporter
	if cfg.Jobs.StatsInterval > 0 {
		statsReporter = jobs.NewTableStatsReporter(repository.NewStatsRepository(db), cfg.Jobs.StatsInterval)
		statsReporter.Start()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	if statsReporter != nil {
		statsReporter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
