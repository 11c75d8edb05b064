package services

import (
	"context"
	"time"

	"adforge/config"
	"adforge/generator"
	"adforge/models"
	"adforge/repositories"
)

// persistRequestLog stores one LLM call log. 로그 저장 실패는 생성 흐름을
// 막지 않고 경고만 남긴다.
func persistRequestLog(ctx context.Context, logs *repositories.GenerationLogRepository, reqLog *generator.RequestLog) {
	if reqLog == nil || logs == nil {
		return
	}
	doc := models.GenerationLog{
		Step:           reqLog.Step,
		ModelName:      reqLog.ModelName,
		ModelVersion:   reqLog.ModelVersion,
		InputTokens:    reqLog.TokenUsage.InputTokens,
		OutputTokens:   reqLog.TokenUsage.OutputTokens,
		TotalTokens:    reqLog.TokenUsage.TotalTokens,
		DurationMs:     reqLog.LatencyMs,
		ErrorMessage:   reqLog.ErrorMessage,
		InputPrompt:    reqLog.Prompt,
		OutputResponse: reqLog.Response,
		RequestedAt:    reqLog.GeneratedAt,
		CompletedAt:    reqLog.GeneratedAt.Add(time.Duration(reqLog.LatencyMs) * time.Millisecond),
	}
	if _, err := logs.Insert(ctx, doc); err != nil {
		config.Logger.Warnf("failed to persist generation log (step=%s): %v", reqLog.Step, err)
	}
}
