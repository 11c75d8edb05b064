package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adforge/config"
	"adforge/models"
)

// ContextResult is the structured business-context extraction output.
// Raw keeps any extra snake_case keys the model reported beyond the fixed
// schema; the API boundary converts them to camelCase.
type ContextResult struct {
	Summary     string   `json:"summary"`
	Industry    string   `json:"industry"`
	BrandTone   string   `json:"brand_tone"`
	KeyProducts []string `json:"key_products"`
	Keywords    []string `json:"keywords"`
	Raw         map[string]any
	Degraded    *string
}

const CONTEXT_SYSTEM_INSTRUCTION = `
You are a marketing analyst. Your task is to analyze the provided text about a
business and produce a structured business context for advertising copywriters.
The response MUST be a valid JSON object with five keys:

1. summary: A concise description of the business, no more than 400 characters.
2. industry: The industry the business operates in (e.g., "specialty coffee", "B2B SaaS").
3. brand_tone: The tone of voice the brand should use, as a short phrase.
4. key_products: A list of up to 5 products or services the business offers.
5. keywords: A list of 5-10 marketing keywords for this business.

Additional constraints:
- All JSON keys MUST be snake_case.
- You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
- If the text does not describe a business, infer the most plausible context
  from whatever is present rather than refusing.
`

// Business-context extraction runs cold regardless of campaign creativity.
const contextTemperature = 0.2

// ExtractBusinessContext derives a business context from free text (business
// description, scraped page text, feed titles). On any failure it degrades to
// a canned context built from the input and records the cause; only context
// cancellation is surfaced as an error.
func ExtractBusinessContext(ctx context.Context, text string) (*ContextResult, *RequestLog, error) {
	startTime := time.Now()
	modelName := config.GetConfig().Gemini.TextModel

	raw, reqLog, err := generateText(ctx, "business_context", modelName, CONTEXT_SYSTEM_INSTRUCTION, text, contextTemperature)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		res := FallbackBusinessContext(text)
		cause := fmt.Errorf("business context extraction degraded: %w", err)
		res.Degraded = strPtr(cause.Error())
		return res, degradedLog("business_context", modelName, text, cause, startTime), nil
	}

	var res ContextResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		fallback := FallbackBusinessContext(text)
		cause := fmt.Errorf("business context extraction degraded: unparsable model output: %w", err)
		fallback.Degraded = strPtr(cause.Error())
		reqLog.ErrorMessage = strPtr(cause.Error())
		return fallback, reqLog, nil
	}

	// 고정 스키마 외 필드를 extras 로 보존한다.
	var full map[string]any
	if err := json.Unmarshal([]byte(raw), &full); err == nil {
		for _, k := range []string{"summary", "industry", "brand_tone", "key_products", "keywords"} {
			delete(full, k)
		}
		if len(full) > 0 {
			res.Raw = full
		}
	}

	return &res, reqLog, nil
}

// ToModel converts the extraction result into the persisted representation.
func (r *ContextResult) ToModel(modelName string) models.BusinessContext {
	return models.BusinessContext{
		Summary:     r.Summary,
		Industry:    r.Industry,
		BrandTone:   r.BrandTone,
		KeyProducts: r.KeyProducts,
		Keywords:    r.Keywords,
		Extras:      r.Raw,
		ModelName:   modelName,
		GeneratedAt: time.Now(),
	}
}

func strPtr(s string) *string { return &s }
