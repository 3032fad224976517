package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	clientTimeout = 10 * time.Second
	// minParagraphLen filters boilerplate, captions and cookie banners.
	minParagraphLen = 100

	fallbackMessage = "Content could not be retrieved for this article. Open the source URL to read it."
)

// browserHeaders makes requests look like a regular browser; many publishers
// reject bot user agents outright.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

var contentClassPattern = regexp.MustCompile(`(?i)article|content|story`)

// Scraper extracts readable article text from publisher pages. Scrape never
// fails: fetch or parse problems degrade to a fallback string so one broken
// page cannot abort a batch.
type Scraper struct {
	timeout time.Duration
}

func New() *Scraper {
	return &Scraper{timeout: clientTimeout}
}

// Scrape fetches the page and returns its readable body text, or a fallback
// string describing why it could not be retrieved.
func (s *Scraper) Scrape(pageURL string) string {
	c := colly.NewCollector()
	c.SetRequestTimeout(s.timeout)
	c.OnRequest(func(r *colly.Request) {
		for k, v := range browserHeaders {
			r.Headers.Set(k, v)
		}
	})

	var content string
	c.OnHTML("html", func(e *colly.HTMLElement) {
		content = extractBody(e.DOM)
	})
	c.OnError(func(_ *colly.Response, err error) {
		content = fmt.Sprintf("Could not fetch article: %v", err)
	})

	if err := c.Visit(pageURL); err != nil && content == "" {
		content = fmt.Sprintf("Could not fetch article: %v", err)
	}

	if strings.TrimSpace(content) == "" {
		content = fallbackMessage
	}
	return content
}

// extractBody strips non-content elements, locates the primary content
// container and joins its long paragraphs.
func extractBody(doc *goquery.Selection) string {
	doc.Find("script, style, nav, header, footer, aside").Remove()

	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}
	if container.Length() == 0 {
		doc.Find("div, section").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if class, ok := sel.Attr("class"); ok && contentClassPattern.MatchString(class) {
				container = sel
				return false
			}
			return true
		})
	}
	if container.Length() == 0 {
		container = doc.Find("body")
	}

	var paragraphs []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		t := strings.TrimSpace(p.Text())
		if len(t) > minParagraphLen {
			paragraphs = append(paragraphs, t)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
