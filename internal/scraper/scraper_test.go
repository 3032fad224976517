package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var (
	longParaA = strings.Repeat("The first body paragraph keeps going well past the length filter. ", 3)
	longParaB = strings.Repeat("The second body paragraph also keeps going well past the length filter. ", 3)
	longNoise = strings.Repeat("Navigation footer noise that is long enough to pass the filter on its own. ", 3)
)

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
}

func TestScrapeExtractsArticleParagraphs(t *testing.T) {
	page := fmt.Sprintf(`<html><head><script>var x = 1;</script><style>p {}</style></head>
<body>
<nav><p>%s</p></nav>
<article>
  <p>Too short.</p>
  <p>%s</p>
  <p>%s</p>
</article>
<footer><p>%s</p></footer>
</body></html>`, longNoise, longParaA, longParaB, longNoise)

	srv := servePage(t, page)
	defer srv.Close()

	got := New().Scrape(srv.URL)
	want := strings.TrimSpace(longParaA) + "\n\n" + strings.TrimSpace(longParaB)
	if got != want {
		t.Fatalf("Scrape = %q, want %q", got, want)
	}
}

func TestScrapeUsesClassPatternContainer(t *testing.T) {
	page := fmt.Sprintf(`<html><body>
<div class="sidebar"><p>%s</p></div>
<div class="story-body"><p>%s</p></div>
</body></html>`, longNoise, longParaA)

	srv := servePage(t, page)
	defer srv.Close()

	got := New().Scrape(srv.URL)
	if got != strings.TrimSpace(longParaA) {
		t.Fatalf("Scrape = %q, want only story-body paragraph", got)
	}
}

func TestScrapeFallsBackToBody(t *testing.T) {
	page := fmt.Sprintf(`<html><body><div><p>%s</p></div></body></html>`, longParaA)

	srv := servePage(t, page)
	defer srv.Close()

	// No article/main and no matching class: the whole body is scanned.
	if got := New().Scrape(srv.URL); got != strings.TrimSpace(longParaA) {
		t.Fatalf("Scrape = %q, want body paragraph", got)
	}
}

func TestScrapeNoLongParagraphs(t *testing.T) {
	srv := servePage(t, `<html><body><article><p>Short.</p><p>Also short.</p></article></body></html>`)
	defer srv.Close()

	if got := New().Scrape(srv.URL); got != fallbackMessage {
		t.Fatalf("Scrape = %q, want fallback message", got)
	}
}

func TestScrapeHTTPErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	got := New().Scrape(srv.URL)
	if got == "" || got == fallbackMessage {
		t.Fatalf("Scrape = %q, want error-bearing fallback content", got)
	}
	if !strings.HasPrefix(got, "Could not fetch article:") {
		t.Fatalf("Scrape = %q, want fetch-error prefix", got)
	}
}

func TestScrapeConnectionErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := New().Scrape(url)
	if !strings.HasPrefix(got, "Could not fetch article:") {
		t.Fatalf("Scrape after connection error = %q, want fetch-error prefix", got)
	}
}

func TestScrapeSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer srv.Close()

	New().Scrape(srv.URL)
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Fatalf("User-Agent = %q, want browser-like", gotUA)
	}
	if gotAccept == "" {
		t.Fatalf("Accept header not sent")
	}
}
