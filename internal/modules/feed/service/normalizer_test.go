package service

import (
	"testing"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
)

func mediaContent(urls ...string) ext.Extensions {
	contents := make([]ext.Extension, 0, len(urls))
	for _, u := range urls {
		contents = append(contents, ext.Extension{
			Name:  "content",
			Attrs: map[string]string{"url": u},
		})
	}
	return ext.Extensions{"media": {"content": contents}}
}

func TestEntryID(t *testing.T) {
	tests := []struct {
		name     string
		item     *gofeed.Item
		expected string
	}{
		{
			name:     "explicit guid wins",
			item:     &gofeed.Item{GUID: "guid-1", Link: "https://example.com/1"},
			expected: "guid-1",
		},
		{
			name:     "falls back to link",
			item:     &gofeed.Item{Link: "https://example.com/1"},
			expected: "https://example.com/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EntryID(tt.item))
		})
	}
}

func TestNormalizeEscapesText(t *testing.T) {
	normalizer := NewNormalizer()
	item := &gofeed.Item{
		GUID:        "1",
		Title:       `Breaking <script>"news"</script>`,
		Description: "a & b",
		Link:        "https://example.com/1",
	}

	entry := normalizer.Normalize(item)

	assert.Equal(t, "Breaking &lt;script&gt;&#34;news&#34;&lt;/script&gt;", entry.Title)
	assert.Equal(t, "a &amp; b", entry.Summary)
	assert.Equal(t, "https://example.com/1", entry.Link)
}

func TestNormalizeMissingSummary(t *testing.T) {
	normalizer := NewNormalizer()
	entry := normalizer.Normalize(&gofeed.Item{GUID: "1", Title: "t", Link: "https://example.com/1"})

	assert.Equal(t, "", entry.Summary)
}

func TestExtractImageURL(t *testing.T) {
	tests := []struct {
		name     string
		item     *gofeed.Item
		expected string
	}{
		{
			name: "media content beats typed enclosure",
			item: &gofeed.Item{
				Extensions: mediaContent("https://cdn.example.com/media.jpg"),
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/enc.png", Type: "image/png"}},
			},
			expected: "https://cdn.example.com/media.jpg",
		},
		{
			name: "invalid media content falls through",
			item: &gofeed.Item{
				Extensions: mediaContent("/relative/media.jpg"),
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/enc.png", Type: "image/png"}},
			},
			expected: "https://cdn.example.com/enc.png",
		},
		{
			name: "item image used when no media content",
			item: &gofeed.Item{
				Image:      &gofeed.Image{URL: "https://cdn.example.com/item.jpg"},
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/enc.png", Type: "image/png"}},
			},
			expected: "https://cdn.example.com/item.jpg",
		},
		{
			name: "image typed enclosure",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{
					{URL: "https://example.com/audio.mp3", Type: "audio/mpeg"},
					{URL: "https://example.com/pic.png", Type: "image/png"},
				},
			},
			expected: "https://example.com/pic.png",
		},
		{
			name: "keyword heuristic on untyped enclosure",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{
					{URL: "https://example.com/files/data.bin", Type: "application/octet-stream"},
					{URL: "https://example.com/Photos/1234", Type: "application/octet-stream"},
				},
			},
			expected: "https://example.com/Photos/1234",
		},
		{
			name: "only malformed candidates yields no image",
			item: &gofeed.Item{
				Extensions: mediaContent(""),
				Enclosures: []*gofeed.Enclosure{
					{URL: "/img/local.jpg", Type: "image/jpeg"},
					{URL: "not a url", Type: "image/png"},
				},
			},
			expected: "",
		},
		{
			name:     "no candidates",
			item:     &gofeed.Item{GUID: "1"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractImageURL(tt.item))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://example.com/a.jpg", true},
		{"http://example.com", true},
		{"/relative/path.jpg", false},
		{"example.com/no-scheme.jpg", false},
		{"", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, isValidURL(tt.url))
		})
	}
}
