package analyzer_test

import (
	"strings"
	"testing"

	"adforge/analyzer"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Han River Roasters</title>
	<meta property="og:image" content="https://example.com/lead.jpg"/>
</head>
<body>
	<article>
		<h1>Han River Roasters</h1>
		<p>Han River Roasters is a specialty coffee company in Seoul. We source
		single-origin beans directly from farms in Ethiopia and Colombia and
		roast them in small batches every morning.</p>
		<p>Our subscription delivers freshly roasted beans to your door every
		week, and our riverside cafe hosts public cupping sessions twice a
		month for anyone curious about brewing.</p>
	</article>
</body>
</html>`

func TestWalkTextCollectsTextNodes(t *testing.T) {
	text := analyzer.WalkText(sampleHTML)
	if !strings.Contains(text, "specialty coffee company") {
		t.Fatalf("expected body text in walk output, got: %q", text)
	}
	if strings.Contains(text, "og:image") {
		t.Fatalf("attribute values must not leak into text output")
	}
}

func TestExtractPageReturnsUsableText(t *testing.T) {
	page := analyzer.ExtractPage(sampleHTML)
	if page == nil {
		t.Fatal("expected a parsed page")
	}
	if !strings.Contains(page.PlainText, "single-origin beans") {
		t.Fatalf("expected article content, got: %q", page.PlainText)
	}
}

func TestExtractPageFallsBackOnGarbage(t *testing.T) {
	page := analyzer.ExtractPage("<html><body><div>hello</div></body></html>")
	if page == nil {
		t.Fatal("expected a parsed page even for thin documents")
	}
	if !strings.Contains(page.PlainText, "hello") {
		t.Fatalf("expected fallback text walk to find content, got: %q", page.PlainText)
	}
}
