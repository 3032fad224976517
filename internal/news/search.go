package news

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	searchBaseURL          = "https://news.google.com"
	searchClientTimeout    = 10 * time.Second
	searchMaxResponseBytes = 2 << 20 // 2MB
	searchMaxResults       = 100
)

// Query carries the per-call search parameters. A fresh value is built for
// every call so no locale settings leak between category fetches.
type Query struct {
	Text     string
	Country  string // ISO country code, defaults to US
	Language string // ISO language code, defaults to en
}

// Result is one raw headline-search hit. Published is kept as the raw feed
// string; the fetcher decides how to interpret it.
type Result struct {
	Title       string
	Description string
	Link        string
	Source      string
	Published   string
}

// SearchClient queries the headline-search feed. BaseURL is overridable for
// tests.
type SearchClient struct {
	BaseURL    string
	MaxResults int
	Client     *http.Client
}

func NewSearchClient() *SearchClient {
	return &SearchClient{
		BaseURL:    searchBaseURL,
		MaxResults: searchMaxResults,
		Client:     &http.Client{Timeout: searchClientTimeout},
	}
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Source      rssSource `xml:"source"`
}

type rssSource struct {
	URL  string `xml:"url,attr"`
	Name string `xml:",chardata"`
}

// Search runs one query against the feed and returns up to MaxResults hits.
func (c *SearchClient) Search(q Query) ([]Result, error) {
	country := q.Country
	if country == "" {
		country = "US"
	}
	lang := q.Language
	if lang == "" {
		lang = "en"
	}

	endpoint := c.BaseURL + "/rss"
	params := url.Values{}
	if strings.TrimSpace(q.Text) != "" {
		endpoint += "/search"
		params.Set("q", q.Text)
	}
	params.Set("hl", lang+"-"+country)
	params.Set("gl", country)
	params.Set("ceid", country+":"+lang)

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("search: build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, searchMaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("search: read response: %w", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("search: unmarshal feed: %w", err)
	}

	items := feed.Channel.Items
	max := c.MaxResults
	if max <= 0 {
		max = searchMaxResults
	}
	if len(items) > max {
		items = items[:max]
	}

	results := make([]Result, 0, len(items))
	for _, it := range items {
		results = append(results, Result{
			Title:       strings.TrimSpace(it.Title),
			Description: stripTags(it.Description),
			Link:        strings.TrimSpace(it.Link),
			Source:      strings.TrimSpace(it.Source.Name),
			Published:   strings.TrimSpace(it.PubDate),
		})
	}
	return results, nil
}

// stripTags drops HTML markup from feed descriptions, which arrive as
// anchor-wrapped snippets.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
