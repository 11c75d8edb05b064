package analyzer

import (
	"context"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"adforge/httpclient"
)

// ParsedPage is the extraction result the generation layer consumes.
type ParsedPage struct {
	PlainText string
	LeadImage string
}

// FetchHTML fetches a page over plain HTTP. (서버 랜더링 사이트용)
// 클라이언트 랜더링이 필요한 사이트는 renderer.RenderHTML 로 폴백한다.
func FetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := httpclient.Get(ctx, url)
	if err != nil {
		return "", err
	}
	body, err := httpclient.ReadBody(resp, 10<<20)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ExtractPageWithReadability extracts article text and the lead image. (main extractor)
func ExtractPageWithReadability(htmlStr string) (*ParsedPage, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedPage{
		PlainText: article.TextContent,
		LeadImage: article.Image,
	}, nil
}

// ExtractPageWithTrafilatura extracts article text via trafilatura.
func ExtractPageWithTrafilatura(htmlStr string) (*ParsedPage, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedPage{
		PlainText: article.ContentText,
		LeadImage: article.Metadata.Image,
	}, nil
}

// ExtractPageWithGoose extracts article text via GoOse.
func ExtractPageWithGoose(htmlStr string) (*ParsedPage, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedPage{
		PlainText: article.CleanedText,
		LeadImage: article.TopImage,
	}, nil
}

// ExtractPage runs the extraction engines in preference order and returns the
// first result with usable text. Marketing landing pages are frequently too
// thin for readability, so the raw text walk is the last resort.
func ExtractPage(htmlStr string) *ParsedPage {
	if p, err := ExtractPageWithReadability(htmlStr); err == nil && strings.TrimSpace(p.PlainText) != "" {
		return p
	}
	if p, err := ExtractPageWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(p.PlainText) != "" {
		return p
	}
	if p, err := ExtractPageWithGoose(htmlStr); err == nil && strings.TrimSpace(p.PlainText) != "" {
		return p
	}
	return &ParsedPage{PlainText: WalkText(htmlStr)}
}

// WalkText collects all text nodes of a document, one line per node.
func WalkText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return b.String()
}
