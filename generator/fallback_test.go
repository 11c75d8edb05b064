package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"adforge/config"
	"adforge/generator"
	"adforge/models"
)

func TestClampScore(t *testing.T) {
	if got := generator.ClampScore(-3); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := generator.ClampScore(250); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := generator.ClampScore(42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestHeuristicEngagementScoreStaysInRange(t *testing.T) {
	long := strings.Repeat("engaging copy ", 100)
	score := generator.HeuristicEngagementScore(long, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"})
	if score < 0 || score > 100 {
		t.Fatalf("score out of range: %d", score)
	}
	if generator.HeuristicEngagementScore("", nil) != 0 {
		t.Fatalf("empty post should score 0")
	}
}

func TestFallbackPostRespectsPlatformLimits(t *testing.T) {
	campaign := models.Campaign{
		BusinessDescription: "Han River Roasters is a specialty coffee company in Seoul roasting single-origin beans in small batches every morning.",
	}
	profile := config.PlatformProfile{Name: "twitter", MaxLength: 80, HashtagLimit: 2, Tone: "punchy"}

	res := generator.FallbackPost(campaign, profile)

	assert.LessOrEqual(t, len(res.Body), 80)
	assert.LessOrEqual(t, len(res.Hashtags), 2)
	assert.NotEmpty(t, res.Body)
	assert.GreaterOrEqual(t, res.EngagementScore, 0)
	assert.LessOrEqual(t, res.EngagementScore, 100)
}

func TestFallbackBusinessContextTruncatesSummary(t *testing.T) {
	text := strings.Repeat("specialty coffee roasted fresh daily ", 30)
	res := generator.FallbackBusinessContext(text)

	assert.LessOrEqual(t, len(res.Summary), 400)
	assert.NotEmpty(t, res.Keywords)
	for _, kw := range res.Keywords {
		if len(kw) < 5 {
			t.Fatalf("fallback keyword too short: %q", kw)
		}
	}
}
