package di

import (
	"context"
	"log/slog"

	cursorRepo "github.com/avelichko/rss-channel-bot/internal/modules/cursor/repository"
	feedService "github.com/avelichko/rss-channel-bot/internal/modules/feed/service"
	messageService "github.com/avelichko/rss-channel-bot/internal/modules/message/service"
	pollerService "github.com/avelichko/rss-channel-bot/internal/modules/poller/service"
	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	httpServer "github.com/avelichko/rss-channel-bot/internal/transport/http"
	"github.com/avelichko/rss-channel-bot/internal/transport/telegram"
	"github.com/go-telegram/bot"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Cursor Repository
	do.Provide(injector, func(i do.Injector) (cursorRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := cursorRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize cursor repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Feed Fetcher
	do.Provide(injector, func(i do.Injector) (*feedService.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.NewFetcher(cfg), nil
	})

	// Register Entry Normalizer
	do.Provide(injector, func(i do.Injector) (*feedService.Normalizer, error) {
		return feedService.NewNormalizer(), nil
	})

	// Register Message Renderer
	do.Provide(injector, func(i do.Injector) (*messageService.Renderer, error) {
		return messageService.New(), nil
	})

	// Register Bot (bot.New performs the getMe identity check, so an invalid
	// token fails startup here)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		b, err := bot.New(cfg.TelegramBotToken, bot.WithServerURL(cfg.TelegramAPIURL))
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		return b, nil
	})

	// Register Telegram Sender
	do.Provide(injector, func(i do.Injector) (*telegram.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		b := do.MustInvoke[*bot.Bot](i)
		return telegram.New(cfg, b), nil
	})

	// Register Poller Service
	do.Provide(injector, func(i do.Injector) (*pollerService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[cursorRepo.Repository](i)
		fetcher := do.MustInvoke[*feedService.Fetcher](i)
		normalizer := do.MustInvoke[*feedService.Normalizer](i)
		renderer := do.MustInvoke[*messageService.Renderer](i)
		sender := do.MustInvoke[*telegram.Sender](i)
		return pollerService.New(cfg, repo, fetcher, normalizer, renderer, sender), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		poller := do.MustInvoke[*pollerService.Service](i)
		server := httpServer.New(cfg, poller)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown poller if it exists
	if poller, err := do.Invoke[*pollerService.Service](injector); err == nil && poller != nil {
		poller.Stop()
	}

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
