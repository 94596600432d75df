package domain

// Entry represents a normalized feed entry ready for delivery
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Link     string `json:"link"`
	ImageURL string `json:"image_url,omitempty"`
}

// HasImage reports whether an image candidate was found for the entry.
func (e *Entry) HasImage() bool {
	return e.ImageURL != ""
}
