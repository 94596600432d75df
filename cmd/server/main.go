package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelichko/rss-channel-bot/internal/di"
	pollerService "github.com/avelichko/rss-channel-bot/internal/modules/poller/service"
	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	httpServer "github.com/avelichko/rss-channel-bot/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	cfg := do.MustInvoke[*config.Config](injector)
	poller := do.MustInvoke[*pollerService.Service](injector)
	statusServer := do.MustInvoke[*httpServer.Server](injector)

	// Start polling the feed
	go poller.Start(context.Background())

	// Start status HTTP server
	go func() {
		if err := statusServer.Start(); err != nil {
			slog.Error("Failed to start status server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Poller started", "feed_url", cfg.FeedURL, "check_interval", cfg.CheckInterval)
	slog.Info("Press Ctrl+C to stop")

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	slog.Info("Shutting down...")
}
