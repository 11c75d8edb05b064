package generator

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"adforge/config"
)

// RequestLog captures one LLM call for the generation_logs collection.
type RequestLog struct {
	Step         string     `json:"step"`
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

func newClient(ctx context.Context) (*genai.Client, error) {
	apiKey := config.GetConfig().GeminiApiKey
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
}

// generateText runs one GenerateContent call and assembles the request log.
// The caller owns JSON parsing of the raw response.
func generateText(ctx context.Context, step, modelName, systemInstruction, prompt string, temperature float32) (string, *RequestLog, error) {
	startTime := time.Now()

	client, err := newClient(ctx)
	if err != nil {
		return "", nil, err
	}

	temp := temperature
	result, err := client.Models.GenerateContent(
		ctx,
		modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			Temperature:       &temp,
		},
	)
	if err != nil {
		return "", nil, err
	}

	reqLog := &RequestLog{
		Step:        step,
		Prompt:      fmt.Sprintf("%s\n\n%s", systemInstruction, prompt),
		Response:    result.Text(),
		LatencyMs:   time.Since(startTime).Milliseconds(),
		ModelName:   modelName,
		GeneratedAt: time.Now(),
	}
	if result.UsageMetadata != nil {
		reqLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	reqLog.ModelVersion = result.ModelVersion

	return result.Text(), reqLog, nil
}

// degradedLog builds a request log entry for a step that fell back to canned
// output, so the generation_logs collection also records skipped calls.
func degradedLog(step, modelName, prompt string, cause error, startTime time.Time) *RequestLog {
	msg := cause.Error()
	return &RequestLog{
		Step:         step,
		Prompt:       prompt,
		LatencyMs:    time.Since(startTime).Milliseconds(),
		ModelName:    modelName,
		ErrorMessage: &msg,
		GeneratedAt:  time.Now(),
	}
}
