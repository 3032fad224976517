package news

import "time"

// Article is a fully-populated headline ready for the storage layer.
type Article struct {
	Title       string
	Source      string
	PublishedAt time.Time
	Content     string
	Category    string
	URL         string
	RawData     map[string]any
}
