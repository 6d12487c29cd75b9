// Package main is the entry point for the markshare server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markshare/internal/auth"
	"markshare/internal/cache"
	"markshare/internal/config"
	"markshare/internal/database"
	"markshare/internal/handlers"
	"markshare/internal/router"
	"markshare/internal/store"
)

func main() {
	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the share read cache. The app works without
	// it — every cache path degrades to a database read.
	var shareCache *cache.ShareCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, share caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		shareCache = cache.NewShareCache(valkeyClient, cache.DefaultShareTTL)
	}

	// Initialize data stores and the access gate.
	userStore := store.NewUserStore(db)
	shareStore := store.NewShareStore(db)
	fileStore := store.NewFileStore(db)
	gate := auth.NewGate(cfg.JWTSecret)

	// Create handler groups with their dependencies.
	markdownHandlers := handlers.NewMarkdown()
	shareHandlers := handlers.NewShares(shareStore, shareCache)
	fileHandlers := handlers.NewFiles(fileStore, shareStore, shareCache)
	authHandlers := handlers.NewAuth(gate, userStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(gate, userStore, markdownHandlers, shareHandlers, fileHandlers, authHandlers)

	// Create the HTTP server with sensible timeouts. ReadTimeout covers
	// uploads up to the 1MB content cap on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
