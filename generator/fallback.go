package generator

import (
	"fmt"
	"strings"

	"adforge/config"
	"adforge/models"
)

// Canned placeholders used when the hosted API is unavailable. The request
// still succeeds; the caller records the degradation reason on the entity.
const (
	PlaceholderImageURL = "https://placehold.co/1080x1080/png?text=adforge"
	PlaceholderVideoURL = "https://storage.googleapis.com/adforge-static/placeholder-video.mp4"
)

// FallbackBusinessContext builds a context from the raw input text alone.
func FallbackBusinessContext(text string) *ContextResult {
	summary := strings.TrimSpace(text)
	if len(summary) > 400 {
		summary = summary[:400]
	}
	return &ContextResult{
		Summary:     summary,
		Industry:    "general",
		BrandTone:   "friendly and professional",
		KeyProducts: []string{},
		Keywords:    fallbackKeywords(text),
	}
}

// FallbackPost builds a canned draft from campaign fields alone.
func FallbackPost(c models.Campaign, profile config.PlatformProfile) *TextResult {
	desc := strings.TrimSpace(c.BusinessDescription)
	body := fmt.Sprintf("%s. Discover what we can do for you today.", desc)
	if profile.MaxLength > 0 && len(body) > profile.MaxLength {
		body = body[:profile.MaxLength]
	}

	hashtags := fallbackKeywords(c.BusinessDescription)
	if profile.HashtagLimit > 0 && len(hashtags) > profile.HashtagLimit {
		hashtags = hashtags[:profile.HashtagLimit]
	}

	return &TextResult{
		Body:            body,
		Hashtags:        hashtags,
		EngagementScore: HeuristicEngagementScore(body, hashtags),
	}
}

// HeuristicEngagementScore approximates an engagement score when the model is
// unavailable: longer bodies up to ~300 chars and a handful of hashtags score
// higher, everything is clamped into [0, 100].
func HeuristicEngagementScore(body string, hashtags []string) int {
	score := len(body) / 6
	if score > 50 {
		score = 50
	}
	score += len(hashtags) * 5
	return ClampScore(score)
}

// fallbackKeywords derives naive keywords from the longest words of the text.
func fallbackKeywords(text string) []string {
	seen := map[string]bool{}
	keywords := []string{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?:;\"'()")
		if len(word) < 5 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) >= 5 {
			break
		}
	}
	return keywords
}
