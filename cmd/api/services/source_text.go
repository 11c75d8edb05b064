package services

import (
	"context"
	"fmt"
	"strings"

	"adforge/analyzer"
	"adforge/config"
	"adforge/feeder"
	"adforge/renderer"
)

const (
	// 본문이 이 길이보다 짧으면 클라이언트 렌더링 페이지로 보고 headless 렌더링을 시도한다.
	minUsefulTextLen = 200
	maxSourceText    = 20000
	maxFeedItems     = 5
)

// sourceTextForURL fetches a page or RSS feed and reduces it to plain text
// suitable as LLM input.
func sourceTextForURL(ctx context.Context, url string) (string, error) {
	if feeder.LooksLikeFeedURL(url) {
		items, err := feeder.FetchRssFeeds(url, maxFeedItems)
		if err != nil {
			return "", fmt.Errorf("fetch feed %s: %w", url, err)
		}
		var b strings.Builder
		for _, item := range items {
			b.WriteString(item.Title)
			b.WriteString("\n")
			b.WriteString(item.Description)
			b.WriteString("\n\n")
		}
		return truncateText(b.String(), maxSourceText), nil
	}

	htmlStr, err := analyzer.FetchHTML(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	page := analyzer.ExtractPage(htmlStr)
	text := page.PlainText

	// SPA 등 클라이언트 렌더링 페이지는 정적 HTML 에 본문이 없으므로
	// headless chrome 으로 한 번 더 시도한다.
	if len(text) < minUsefulTextLen {
		rendered, rerr := renderer.RenderHTML(url)
		if rerr != nil {
			config.Logger.Warnf("headless render failed for %s: %v", url, rerr)
		} else if p := analyzer.ExtractPage(rendered); len(p.PlainText) > len(text) {
			text = p.PlainText
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text at %s", url)
	}
	return truncateText(text, maxSourceText), nil
}

// gatherSourceText collects text from up to five source URLs.
// 개별 URL 실패는 로그만 남기고 건너뛴다.
func gatherSourceText(ctx context.Context, urls []string) string {
	var b strings.Builder
	count := 0
	for _, url := range urls {
		if count >= 5 {
			break
		}
		text, err := sourceTextForURL(ctx, url)
		if err != nil {
			config.Logger.Warnf("skipping source url: %v", err)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
		count++
	}
	return truncateText(b.String(), maxSourceText)
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
