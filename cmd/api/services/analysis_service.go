package services

import (
	"context"

	"adforge/cmd/api/dto"
	"adforge/config"
	"adforge/generator"
	"adforge/quota"
	"adforge/repositories"
)

// AnalysisService turns a URL into a structured business context.
type AnalysisService struct {
	campaigns *repositories.CampaignRepository
	logs      *repositories.GenerationLogRepository
	limiter   *quota.GenerationQuotaLimiter
}

func NewAnalysisService(
	campaigns *repositories.CampaignRepository,
	logs *repositories.GenerationLogRepository,
	limiter *quota.GenerationQuotaLimiter,
) *AnalysisService {
	return &AnalysisService{campaigns: campaigns, logs: logs, limiter: limiter}
}

// AnalyzeURL extracts a business context from a web page or RSS feed.
// URL 을 읽지 못하면 에러를 돌려주지만, LLM 호출 실패는 플레이스홀더
// 컨텍스트로 대체되어 항상 결과가 나온다. CampaignID 가 있으면 추출 결과를
// 해당 캠페인에도 저장한다.
func (s *AnalysisService) AnalyzeURL(ctx context.Context, in dto.AnalyzeURLRequest) (*dto.AnalyzeURLResponse, error) {
	text, err := sourceTextForURL(ctx, in.URL)
	if err != nil {
		return nil, err
	}

	allowed, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return nil, err
	}

	var result *generator.ContextResult
	if !allowed {
		config.Logger.Warnf("daily generation quota exceeded, using fallback context for %s", in.URL)
		result = generator.FallbackBusinessContext(text)
		reason := "daily generation quota exceeded"
		result.Degraded = &reason
	} else {
		var reqLog *generator.RequestLog
		result, reqLog, err = generator.ExtractBusinessContext(ctx, text)
		if err != nil {
			return nil, err
		}
		persistRequestLog(ctx, s.logs, reqLog)
	}

	bc := result.ToModel(config.GetConfig().Gemini.TextModel)

	if in.CampaignID != nil && *in.CampaignID != "" {
		campaign, ferr := s.campaigns.FindByID(ctx, *in.CampaignID)
		if ferr != nil {
			return nil, ferr
		}
		if uerr := s.campaigns.UpdateBusinessContext(ctx, campaign.ID, bc); uerr != nil {
			return nil, uerr
		}
	}

	return &dto.AnalyzeURLResponse{
		SourceURL:       in.URL,
		BusinessContext: mapBusinessContextToDTO(bc),
	}, nil
}
