package storage

import (
	"strings"
	"testing"
	"time"
)

func TestPublishedDateBucketsInIST(t *testing.T) {
	// 2026-08-31 22:00 UTC is already 2026-09-01 in IST (+05:30).
	ts := time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)
	if got := publishedDate(ts); got != "2026-09-01" {
		t.Fatalf("publishedDate = %q, want %q", got, "2026-09-01")
	}

	ts = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	if got := publishedDate(ts); got != "2026-08-31" {
		t.Fatalf("publishedDate = %q, want %q", got, "2026-08-31")
	}
}

func TestToValidUTF8ReplacesBrokenBytes(t *testing.T) {
	in := "ok\xffbroken"
	out := toValidUTF8(in)
	if strings.Contains(out, "\xff") {
		t.Fatalf("toValidUTF8 left invalid byte in %q", out)
	}
	if !strings.HasPrefix(out, "ok") || !strings.HasSuffix(out, "broken") {
		t.Fatalf("toValidUTF8 mangled surrounding text: %q", out)
	}
}

func TestTruncateRunesDB(t *testing.T) {
	if got := truncateRunesDB("short", 512); got != "short" {
		t.Fatalf("truncateRunesDB should keep short values, got %q", got)
	}

	long := strings.Repeat("x", 600)
	if got := truncateRunesDB(long, 512); len([]rune(got)) != 512 {
		t.Fatalf("truncateRunesDB length = %d, want 512", len([]rune(got)))
	}

	if got := truncateRunesDB("anything", 0); got != "" {
		t.Fatalf("truncateRunesDB with zero limit = %q, want empty", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct{ in, want string }{
		{"technology", "technology"},
		{" Technology ", "technology"},
		{"india", "india"},
		{"general", "general"},
		{"", "general"},
		{"politics", "general"},
	}
	for _, c := range cases {
		if got := normalizeCategory(c.in); got != c.want {
			t.Fatalf("normalizeCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
