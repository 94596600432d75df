package telegram

import (
	"context"
	"log/slog"
	"time"

	feedDomain "github.com/avelichko/rss-channel-bot/internal/modules/feed/domain"
	messageDomain "github.com/avelichko/rss-channel-bot/internal/modules/message/domain"
	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"
)

const retryBackoff = 2 * time.Second

// Client is the subset of the Telegram bot API the sender relies on.
type Client interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
}

// Sender delivers rendered entries to the configured Telegram channel
type Sender struct {
	cfg        *config.Config
	client     Client
	retryDelay time.Duration
}

// New creates a new Telegram sender
func New(cfg *config.Config, client Client) *Sender {
	return &Sender{
		cfg:        cfg,
		client:     client,
		retryDelay: retryBackoff,
	}
}

// Deliver posts the entry to the channel, retrying failed sends with a fixed
// backoff up to the configured attempt limit. Cursor advancement is the
// caller's responsibility.
func (s *Sender) Deliver(ctx context.Context, entry *feedDomain.Entry, rendered messageDomain.Rendered) messageDomain.DeliveryOutcome {
	attempts := s.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0
	operation := func() error {
		attempt++
		if err := s.send(ctx, entry, rendered); err != nil {
			slog.Warn("Failed to send entry", "entry_id", entry.ID, "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryDelay), uint64(attempts-1))
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		slog.Error("All delivery attempts failed, skipping entry", "entry_id", entry.ID, "attempts", attempt, "error", err)
		return messageDomain.DeliveryOutcomeFailed
	}

	return messageDomain.DeliveryOutcomeSent
}

func (s *Sender) send(ctx context.Context, entry *feedDomain.Entry, rendered messageDomain.Rendered) error {
	if entry.HasImage() {
		_, err := s.client.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    s.cfg.ChannelID,
			Photo:     &models.InputFileString{Data: entry.ImageURL},
			Caption:   rendered.Caption,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			return oops.With("entry_id", entry.ID, "image_url", entry.ImageURL, "context", "failed to send photo").Wrap(err)
		}

		slog.Info("Posted entry with photo", "entry_id", entry.ID, "title", entry.Title)
		return nil
	}

	_, err := s.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    s.cfg.ChannelID,
		Text:      rendered.Full,
		ParseMode: models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.False(),
		},
	})
	if err != nil {
		return oops.With("entry_id", entry.ID, "context", "failed to send message").Wrap(err)
	}

	slog.Info("Posted entry", "entry_id", entry.ID, "title", entry.Title)
	return nil
}
