package generator

import (
	"strings"
	"testing"

	"adforge/config"
	"adforge/models"
)

func TestBuildPostPromptIncludesBriefAndContext(t *testing.T) {
	campaign := models.Campaign{
		BusinessDescription: "Specialty coffee company in Seoul",
		Objective:           "drive subscriptions",
		TargetAudience:      "urban professionals aged 25-40",
		CampaignType:        "product_launch",
		BusinessContext: &models.BusinessContext{
			Summary:     "Small-batch roaster with weekly delivery",
			Industry:    "specialty coffee",
			BrandTone:   "warm, craft-focused",
			KeyProducts: []string{"bean subscription", "cold brew"},
			Keywords:    []string{"coffee", "seoul"},
		},
	}
	profile := config.PlatformProfile{Name: "linkedin", MaxLength: 3000, HashtagLimit: 5, Tone: "professional"}

	prompt := buildPostPrompt(campaign, profile)

	for _, want := range []string{
		"Platform: linkedin",
		"max 3000 characters",
		"drive subscriptions",
		"urban professionals",
		"Small-batch roaster",
		"bean subscription, cold brew",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPostPromptSkipsEmptySections(t *testing.T) {
	campaign := models.Campaign{BusinessDescription: "A bakery"}
	profile := config.PlatformProfile{Name: "twitter", MaxLength: 280, HashtagLimit: 3, Tone: "punchy"}

	prompt := buildPostPrompt(campaign, profile)

	if strings.Contains(prompt, "Business context:") {
		t.Fatalf("prompt must not contain an empty context section:\n%s", prompt)
	}
	if strings.Contains(prompt, "Campaign objective:") {
		t.Fatalf("prompt must not contain an empty objective line:\n%s", prompt)
	}
}

func TestVisualPromptMentionsPlatformAndCopy(t *testing.T) {
	bc := "specialty coffee, warm tone"
	prompt := VisualPrompt("instagram", "Fresh beans, every week.", &bc)
	for _, want := range []string{"instagram", "Fresh beans, every week.", "Brand context"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("visual prompt missing %q:\n%s", want, prompt)
		}
	}
}
