package service

import (
	"html"
	"net/url"
	"strings"

	"github.com/avelichko/rss-channel-bot/internal/modules/feed/domain"
	"github.com/mmcdole/gofeed"
)

var imageKeywords = []string{"image", "img", "photo", "picture"}

// Normalizer converts raw feed items into delivery-ready entries
type Normalizer struct{}

// NewNormalizer creates a new entry normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize derives a stable id, escapes title and summary for HTML-formatted
// messages and picks an image candidate if the item carries one.
func (n *Normalizer) Normalize(item *gofeed.Item) *domain.Entry {
	return &domain.Entry{
		ID:       EntryID(item),
		Title:    html.EscapeString(item.Title),
		Summary:  html.EscapeString(item.Description),
		Link:     item.Link,
		ImageURL: extractImageURL(item),
	}
}

// EntryID returns the item's explicit id when present, its link otherwise.
// The same feed state always yields the same id.
func EntryID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return item.Link
}

// extractImageURL scans the item's media references for the first usable
// image URL. Structured media:content references win over enclosures typed
// as images, which win over enclosures with an image-looking URL.
func extractImageURL(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if u := content.Attrs["url"]; isValidURL(u) {
				return u
			}
		}
	}
	if item.Image != nil && isValidURL(item.Image.URL) {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image") && isValidURL(enc.URL) {
			return enc.URL
		}
	}

	for _, enc := range item.Enclosures {
		if !isValidURL(enc.URL) {
			continue
		}
		lower := strings.ToLower(enc.URL)
		for _, keyword := range imageKeywords {
			if strings.Contains(lower, keyword) {
				return enc.URL
			}
		}
	}

	return ""
}

// isValidURL reports whether u parses with both a scheme and a host. Relative
// paths and malformed media metadata would be rejected by the Telegram API.
func isValidURL(u string) bool {
	if u == "" {
		return false
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
