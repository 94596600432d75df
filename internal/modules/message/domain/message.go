package domain

// Rendered holds the display variants of a formatted entry. Full is used for
// plain text posts, Caption alongside an image.
type Rendered struct {
	Full    string `json:"full"`
	Caption string `json:"caption"`
}
