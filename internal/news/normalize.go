package news

import (
	"net/url"
	"strings"
)

// CanonicalURL strips the aggregator's redirect wrapping from an article
// link and returns the publisher URL. Links that do not belong to the
// aggregator, or that cannot be parsed, are returned unchanged.
func CanonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	if host != "news.google.com" && host != "www.google.com" && host != "google.com" {
		return raw
	}

	if u.Path == "/url" ||
		strings.HasPrefix(u.Path, "/rss/articles/") ||
		strings.HasPrefix(u.Path, "/articles/") {
		if target := u.Query().Get("url"); target != "" {
			return target
		}
	}

	return raw
}
