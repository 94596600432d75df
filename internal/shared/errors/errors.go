package errors

import "errors"

var (
	ErrMissingBotToken  = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingChannelID = errors.New("CHANNEL_ID environment variable is required")
	ErrMissingFeedURL   = errors.New("FEED_URL environment variable is required")
)
