package service

import (
	"context"
	"net/http"
	"time"

	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	"github.com/mmcdole/gofeed"
	"github.com/samber/oops"
)

const (
	fetchTimeout = 30 * time.Second
	userAgent    = "rss-channel-bot/1.0"
)

// Fetcher downloads and parses the configured RSS/Atom feed
type Fetcher struct {
	feedURL string
	parser  *gofeed.Parser
	client  *http.Client
}

// NewFetcher creates a new feed fetcher
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		feedURL: cfg.FeedURL,
		parser:  gofeed.NewParser(),
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch returns the feed entries in the order the feed presents them.
// RSS convention is newest-first; the poller's watermark logic relies on it.
func (f *Fetcher) Fetch(ctx context.Context) ([]*gofeed.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, oops.With("feed_url", f.feedURL, "context", "failed to build feed request").Wrap(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, oops.With("feed_url", f.feedURL, "context", "failed to fetch feed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oops.With("feed_url", f.feedURL, "status_code", resp.StatusCode).Errorf("unexpected feed response status")
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, oops.With("feed_url", f.feedURL, "context", "failed to parse feed").Wrap(err)
	}

	return feed.Items, nil
}
