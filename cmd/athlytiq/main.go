package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/athlytiq/athlytiq/internal/assistant"
	"github.com/athlytiq/athlytiq/internal/config"
	"github.com/athlytiq/athlytiq/internal/database"
	"github.com/athlytiq/athlytiq/internal/gemini"
	"github.com/athlytiq/athlytiq/internal/nutrition"
	"github.com/athlytiq/athlytiq/internal/server"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Athlytiq %s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	var logLevel slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Athlytiq", "version", version)

	// Initialize database
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Database initialized", "path", cfg.Database.Path)

	// Initialize services. A missing API key is not fatal here; the AI
	// routes report it per request so the rest of the app stays usable.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI routes will return errors")
	}
	client := gemini.NewClient(apiKey, cfg.Gemini.Model, time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second)
	chat := assistant.NewService(client)
	tools := nutrition.NewService(client)

	// Build HTTP server
	srv := server.New(cfg, db, chat, tools)

	// Expire stale sessions in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sessionJanitor(ctx, db)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		srv.Shutdown(context.Background())
	}()

	// Start serving
	slog.Info("Server listening", "addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// sessionJanitor deletes expired sessions once an hour until ctx is
// cancelled.
func sessionJanitor(ctx context.Context, db *database.DB) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := db.DeleteExpiredSessions()
			if err != nil {
				slog.Warn("Session cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("Expired sessions removed", "count", n)
			}
		}
	}
}
