package news

import (
	"fmt"
	"strings"
	"time"
)

// fetchWindowDays is the default span of the fetch window when no explicit
// bounds are given.
const fetchWindowDays = 7

// Scraper retrieves readable article body text for a URL. Implementations
// never fail: on any error they return fallback content instead.
type Scraper interface {
	Scrape(url string) string
}

// Fetcher pulls headlines for a category within a fixed date window and
// enriches each hit into a full Article.
type Fetcher struct {
	search  *SearchClient
	scraper Scraper
	start   time.Time
	end     time.Time
}

// NewFetcher builds a fetcher for the given window. Zero bounds are derived:
// no bounds means the trailing 7-day window ending now, a single bound
// anchors the same span on the given side. Range validation (future dates,
// inverted bounds) is the caller's job.
func NewFetcher(search *SearchClient, scraper Scraper, start, end time.Time) *Fetcher {
	switch {
	case start.IsZero() && end.IsZero():
		end = time.Now()
		start = end.AddDate(0, 0, -fetchWindowDays)
	case start.IsZero():
		start = end.AddDate(0, 0, -fetchWindowDays)
	case end.IsZero():
		end = start.AddDate(0, 0, fetchWindowDays)
	}
	return &Fetcher{search: search, scraper: scraper, start: start, end: end}
}

// Window returns the resolved fetch window.
func (f *Fetcher) Window() (start, end time.Time) {
	return f.start, f.end
}

// FetchHeadlines runs one search for the category and returns the resulting
// articles. A per-article scrape failure degrades to fallback content and
// the article stays in the batch; only a failed search call itself is
// reported, so callers can log it and continue with other categories.
func (f *Fetcher) FetchHeadlines(category string) ([]Article, error) {
	results, err := f.search.Search(f.buildQuery(category))
	if err != nil {
		return nil, fmt.Errorf("fetch headlines (category=%q): %w", category, err)
	}

	fetchedAt := time.Now()
	articles := make([]Article, 0, len(results))
	for _, r := range results {
		title, source := splitTitleSource(r.Title, r.Source)
		publishedAt := parsePublished(r.Published, fetchedAt)

		cat := category
		if cat == "" {
			cat = Detect(r.Title, r.Description)
		}

		link := CanonicalURL(r.Link)

		articles = append(articles, Article{
			Title:       title,
			Source:      source,
			PublishedAt: publishedAt,
			Content:     f.scraper.Scrape(link),
			Category:    cat,
			URL:         link,
			RawData: map[string]any{
				"raw_link":      r.Link,
				"raw_published": r.Published,
				"publisher":     r.Source,
			},
		})
	}
	return articles, nil
}

func (f *Fetcher) buildQuery(category string) Query {
	if category == CategoryIndia {
		return Query{Text: "india", Country: "IN", Language: "en"}
	}
	if category == "" {
		return Query{}
	}
	return Query{Text: fmt.Sprintf("%s news after:%s before:%s",
		category, f.start.Format("2006-01-02"), f.end.Format("2006-01-02"))}
}

// splitTitleSource strips the feed's trailing " - <publisher>" suffix from a
// headline. When the feed did not name the publisher separately, the suffix
// itself is used as the source.
func splitTitleSource(title, source string) (string, string) {
	title = strings.TrimSpace(title)
	idx := strings.LastIndex(title, " - ")
	if idx <= 0 {
		return title, source
	}
	suffix := strings.TrimSpace(title[idx+3:])
	if source == "" {
		return strings.TrimSpace(title[:idx]), suffix
	}
	if strings.EqualFold(suffix, source) {
		return strings.TrimSpace(title[:idx]), source
	}
	return title, source
}

// pubDateFormats covers the timestamp layouts seen in the feed.
var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// parsePublished resolves the feed's date string. The feed sometimes sends
// relative strings ("2 hours ago") that no layout matches; those fall back
// to the fetch time. Known accuracy limitation: this skews timestamps of
// older articles toward the fetch time, which is why the raw string is kept
// in the article's RawData.
func parsePublished(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range pubDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}
