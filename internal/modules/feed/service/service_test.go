package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	"github.com/gorilla/feeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeedXML(t *testing.T) string {
	t.Helper()

	now := time.Now()
	feed := &feeds.Feed{
		Title:       "Test Feed",
		Link:        &feeds.Link{Href: "https://example.com"},
		Description: "feed used in tests",
		Created:     now,
		Items: []*feeds.Item{
			{Id: "3", Title: "C", Link: &feeds.Link{Href: "https://example.com/3"}, Description: "newest", Created: now},
			{Id: "2", Title: "B", Link: &feeds.Link{Href: "https://example.com/2"}, Description: "middle", Created: now.Add(-time.Hour)},
			{Id: "1", Title: "A", Link: &feeds.Link{Href: "https://example.com/1"}, Description: "oldest", Created: now.Add(-2 * time.Hour)},
		},
	}

	rss, err := feed.ToRss()
	require.NoError(t, err)
	return rss
}

func TestFetchReturnsEntriesInFeedOrder(t *testing.T) {
	rss := testFeedXML(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer srv.Close()

	fetcher := NewFetcher(&config.Config{FeedURL: srv.URL})
	items, err := fetcher.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "3", items[0].GUID)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, "A", items[2].Title)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fetcher := NewFetcher(&config.Config{FeedURL: srv.URL})
	items, err := fetcher.Fetch(context.Background())

	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestFetchParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(&config.Config{FeedURL: srv.URL})
	items, err := fetcher.Fetch(context.Background())

	assert.Error(t, err)
	assert.Nil(t, items)
}
