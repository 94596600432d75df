package service

import (
	"fmt"
	"strings"

	feedDomain "github.com/avelichko/rss-channel-bot/internal/modules/feed/domain"
	"github.com/avelichko/rss-channel-bot/internal/modules/message/domain"
)

const (
	// Telegram caps photo captions at 1024 characters; 3500 keeps the text
	// body of a plain message safely under the 4096 message limit once the
	// title and link are added.
	maxSummaryLen = 3500
	maxCaptionLen = 1024

	ellipsis = "..."
)

// Renderer formats normalized entries into Telegram-ready HTML messages
type Renderer struct{}

// New creates a new message renderer
func New() *Renderer {
	return &Renderer{}
}

// Render produces the full-length message and the photo caption variant.
// Title and summary are expected to be HTML-escaped already.
func (r *Renderer) Render(entry *feedDomain.Entry) domain.Rendered {
	full := fmt.Sprintf("<b>%s</b>\n\n%s\n\nRead more: %s", entry.Title, Truncate(entry.Summary, maxSummaryLen), entry.Link)

	return domain.Rendered{
		Full:    full,
		Caption: Truncate(full, maxCaptionLen),
	}
}

// Truncate cuts text to at most limit runes, stepping back to the last space
// inside the cut window so words are not split, and appends an ellipsis
// marker. Text with no space inside the window is hard-cut at the limit.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit-len(ellipsis)])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		return cut[:idx] + ellipsis
	}

	return cut + ellipsis
}
