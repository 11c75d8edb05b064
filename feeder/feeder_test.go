package feeder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"adforge/feeder"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Han River Roasters Blog</title>
	<item>
		<title>New Ethiopia Guji lot</title>
		<link>https://example.com/posts/1</link>
		<pubDate>Mon, 02 Jun 2025 09:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Cupping session recap</title>
		<link>https://example.com/posts/2</link>
		<pubDate>Mon, 26 May 2025 09:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Cold brew season</title>
		<link>https://example.com/posts/3</link>
		<pubDate>Mon, 19 May 2025 09:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

func TestFetchRssFeeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	items, err := feeder.FetchRssFeeds(srv.URL, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected limit of 2 items, got %d", len(items))
	}
	if items[0].Title != "New Ethiopia Guji lot" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[0].PublishedAt.IsZero() {
		t.Fatalf("expected parsed publish date")
	}
}

func TestLooksLikeFeedURL(t *testing.T) {
	feeds := []string{
		"https://example.com/feed",
		"https://example.com/rss/",
		"https://example.com/index.xml",
		"https://example.com/atom",
	}
	for _, u := range feeds {
		if !feeder.LooksLikeFeedURL(u) {
			t.Fatalf("expected %q to be treated as a feed", u)
		}
	}
	if feeder.LooksLikeFeedURL("https://example.com/about") {
		t.Fatalf("plain page URL must not be treated as a feed")
	}
}
