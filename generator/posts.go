package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"adforge/config"
	"adforge/models"
)

// TextResult is one generated social post before persistence.
type TextResult struct {
	Body            string   `json:"body"`
	Hashtags        []string `json:"hashtags"`
	EngagementScore int      `json:"engagement_score"`
	Degraded        *string
}

const POST_SYSTEM_INSTRUCTION = `
You are a social media copywriter. Your task is to write one post for the
requested platform using the provided campaign brief and business context.
The response MUST be a valid JSON object with three keys:

1. body: The post text, tailored to the platform's conventions and length limit.
   Do not include hashtags in the body.
2. hashtags: A list of hashtags without the '#' prefix, within the given limit.
3. engagement_score: An integer from 0 to 100 estimating how well this post
   will engage the stated target audience on this platform.

Additional constraints:
- All JSON keys MUST be snake_case.
- You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
- Respect the platform length limit strictly.
`

// GeneratePost writes one post for a platform. Campaign creativity maps to
// the model temperature. On any failure it degrades to the canned draft and
// records the cause; only context cancellation is surfaced as an error.
func GeneratePost(ctx context.Context, campaign models.Campaign, profile config.PlatformProfile) (*TextResult, *RequestLog, error) {
	startTime := time.Now()
	modelName := config.GetConfig().Gemini.TextModel
	prompt := buildPostPrompt(campaign, profile)

	temperature := float32(campaign.Creativity)
	if temperature <= 0 {
		temperature = 0.7
	}

	raw, reqLog, err := generateText(ctx, "post_text", modelName, POST_SYSTEM_INSTRUCTION, prompt, temperature)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		res := FallbackPost(campaign, profile)
		cause := fmt.Errorf("post generation degraded: %w", err)
		res.Degraded = strPtr(cause.Error())
		return res, degradedLog("post_text", modelName, prompt, cause, startTime), nil
	}

	var res TextResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		fallback := FallbackPost(campaign, profile)
		cause := fmt.Errorf("post generation degraded: unparsable model output: %w", err)
		fallback.Degraded = strPtr(cause.Error())
		reqLog.ErrorMessage = strPtr(cause.Error())
		return fallback, reqLog, nil
	}

	res.EngagementScore = ClampScore(res.EngagementScore)
	if len(res.Hashtags) > profile.HashtagLimit && profile.HashtagLimit > 0 {
		res.Hashtags = res.Hashtags[:profile.HashtagLimit]
	}
	return &res, reqLog, nil
}

func buildPostPrompt(c models.Campaign, profile config.PlatformProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Platform: %s (max %d characters, up to %d hashtags, tone: %s)\n\n",
		profile.Name, profile.MaxLength, profile.HashtagLimit, profile.Tone)
	fmt.Fprintf(&b, "Business description: %s\n", c.BusinessDescription)
	if c.Objective != "" {
		fmt.Fprintf(&b, "Campaign objective: %s\n", c.Objective)
	}
	if c.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", c.TargetAudience)
	}
	if c.CampaignType != "" {
		fmt.Fprintf(&b, "Campaign type: %s\n", c.CampaignType)
	}
	if bc := c.BusinessContext; bc != nil {
		b.WriteString("\nBusiness context:\n")
		fmt.Fprintf(&b, "- Summary: %s\n", bc.Summary)
		if bc.Industry != "" {
			fmt.Fprintf(&b, "- Industry: %s\n", bc.Industry)
		}
		if bc.BrandTone != "" {
			fmt.Fprintf(&b, "- Brand tone: %s\n", bc.BrandTone)
		}
		if len(bc.KeyProducts) > 0 {
			fmt.Fprintf(&b, "- Key products: %s\n", strings.Join(bc.KeyProducts, ", "))
		}
		if len(bc.Keywords) > 0 {
			fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(bc.Keywords, ", "))
		}
	}
	return b.String()
}

// ClampScore bounds an engagement score into [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
