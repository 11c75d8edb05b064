package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adforge/cmd/api/dto"
	"adforge/config"
	"adforge/eventbus"
	"adforge/events"
	"adforge/generator"
	"adforge/models"
	"adforge/quota"
	"adforge/repositories"
)

// ContentService orchestrates text generation and queues visual generation.
//
//   - 텍스트 생성은 동기(요청-응답) 흐름으로 처리하고,
//   - 이미지/비디오 생성은 Kafka 이벤트로 visualworker 에 위임한다.
type ContentService struct {
	campaigns *repositories.CampaignRepository
	posts     *repositories.PostRepository
	logs      *repositories.GenerationLogRepository
	limiter   *quota.GenerationQuotaLimiter
	bus       eventbus.EventBus
}

func NewContentService(
	campaigns *repositories.CampaignRepository,
	posts *repositories.PostRepository,
	logs *repositories.GenerationLogRepository,
	limiter *quota.GenerationQuotaLimiter,
	bus eventbus.EventBus,
) *ContentService {
	return &ContentService{
		campaigns: campaigns,
		posts:     posts,
		logs:      logs,
		limiter:   limiter,
		bus:       bus,
	}
}

// GenerateText generates one post per requested platform for a campaign.
// 비즈니스 컨텍스트가 아직 없으면 소스 URL 에서 먼저 추출한다.
// 생성 실패는 플랫폼 단위로 격리된다: 실패한 플랫폼은 플레이스홀더 초안과
// 실패 사유를 담고, 나머지 플랫폼은 정상 생성된다.
func (s *ContentService) GenerateText(ctx context.Context, in dto.GenerateContentRequest) ([]dto.PostDTO, error) {
	campaign, err := s.campaigns.FindByID(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.Status.ContextExtracted {
		if err := s.ensureBusinessContext(ctx, campaign); err != nil {
			return nil, err
		}
	}

	cfg := config.GetConfig()
	platforms := in.Platforms
	if len(platforms) == 0 {
		for _, p := range cfg.Platforms {
			platforms = append(platforms, p.Name)
		}
	}

	out := make([]dto.PostDTO, 0, len(platforms))
	for _, name := range platforms {
		profile := cfg.Platform(name)

		res, reqLog, gerr := s.generateForPlatform(ctx, *campaign, profile)
		if gerr != nil {
			return nil, gerr
		}
		persistRequestLog(ctx, s.logs, reqLog)

		post := models.GeneratedPost{
			CampaignID:      campaign.ID,
			Platform:        profile.Name,
			Body:            res.Body,
			Hashtags:        res.Hashtags,
			EngagementScore: generator.ClampScore(res.EngagementScore),
			ModelName:       cfg.Gemini.TextModel,
			Error:           res.Degraded,
			Status:          models.PostStatusFlags{TextGenerated: true},
		}
		stored, uerr := s.posts.UpsertByCampaignAndPlatform(ctx, &post)
		if uerr != nil {
			return nil, uerr
		}
		out = append(out, mapPostToDTO(*stored))
	}

	if err := s.campaigns.SetPostsGenerated(ctx, campaign.ID, true); err != nil {
		config.Logger.Warnf("failed to flag posts_generated on campaign %s: %v", campaign.ID.Hex(), err)
	}
	return out, nil
}

// generateForPlatform applies the quota before calling the model. 일일 쿼터가
// 소진되면 모델 호출 없이 플레이스홀더 초안으로 대체한다.
func (s *ContentService) generateForPlatform(ctx context.Context, campaign models.Campaign, profile config.PlatformProfile) (*generator.TextResult, *generator.RequestLog, error) {
	allowed, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		config.Logger.Warnf("daily generation quota exceeded, using fallback draft for campaign %s platform %s", campaign.ID.Hex(), profile.Name)
		res := generator.FallbackPost(campaign, profile)
		reason := "daily generation quota exceeded"
		res.Degraded = &reason
		return res, nil, nil
	}
	return generator.GeneratePost(ctx, campaign, profile)
}

// ensureBusinessContext extracts and stores the business context before the
// first text generation. 추출 자체가 실패해도 플레이스홀더 컨텍스트가
// 돌아오므로 항상 저장까지 진행한다.
func (s *ContentService) ensureBusinessContext(ctx context.Context, campaign *models.Campaign) error {
	text := campaign.BusinessDescription
	if sourced := gatherSourceText(ctx, campaign.SourceURLs); sourced != "" {
		text = text + "\n\n" + sourced
	}

	allowed, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return err
	}

	var result *generator.ContextResult
	var reqLog *generator.RequestLog
	if !allowed {
		config.Logger.Warnf("daily generation quota exceeded, using fallback context for campaign %s", campaign.ID.Hex())
		result = generator.FallbackBusinessContext(text)
		reason := "daily generation quota exceeded"
		result.Degraded = &reason
	} else {
		result, reqLog, err = generator.ExtractBusinessContext(ctx, text)
		if err != nil {
			return err
		}
		persistRequestLog(ctx, s.logs, reqLog)
	}

	bc := result.ToModel(config.GetConfig().Gemini.TextModel)
	if err := s.campaigns.UpdateBusinessContext(ctx, campaign.ID, bc); err != nil {
		return err
	}
	campaign.BusinessContext = &bc
	campaign.Status.ContextExtracted = true
	return nil
}

// GenerateVisuals publishes one VisualGenerationRequested event per post and
// returns immediately; visualworker 가 생성과 저장을 담당한다.
func (s *ContentService) GenerateVisuals(ctx context.Context, in dto.GenerateVisualsRequest) (*dto.GenerateVisualsResponse, error) {
	campaign, err := s.campaigns.FindByID(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}

	var targets []models.GeneratedPost
	if len(in.PostIDs) > 0 {
		for _, hexID := range in.PostIDs {
			p, ferr := s.posts.FindByID(ctx, hexID)
			if ferr != nil {
				return nil, ferr
			}
			if p.CampaignID != campaign.ID {
				return nil, fmt.Errorf("post %s does not belong to campaign %s", hexID, in.CampaignID)
			}
			targets = append(targets, *p)
		}
	} else {
		all, lerr := s.posts.ListByCampaign(ctx, campaign.ID)
		if lerr != nil {
			return nil, lerr
		}
		for _, p := range all {
			if p.Status.TextGenerated {
				targets = append(targets, p)
			}
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("campaign %s has no text-generated posts", in.CampaignID)
	}

	queued := make([]string, 0, len(targets))
	for _, p := range targets {
		e := events.VisualGenerationRequestedEvent{
			BaseEvent: events.BaseEvent{
				ID:        uuid.New().String(),
				Type:      events.VisualGenerationRequested,
				Timestamp: time.Now(),
				Source:    "api",
				Version:   "1.0",
			},
			PostID:     p.ID,
			CampaignID: p.CampaignID,
			Platform:   p.Platform,
			Body:       p.Body,
		}
		evt, berr := eventbus.NewJSONEvent("", e, 0)
		if berr != nil {
			return nil, fmt.Errorf("failed to build event: %w", berr)
		}
		if perr := s.bus.Publish(ctx, eventbus.TopicVisualEvents.Base(), evt); perr != nil {
			return nil, fmt.Errorf("failed to publish visual event: %w", perr)
		}
		if merr := s.posts.MarkVisualsRequested(ctx, p.ID, time.Now()); merr != nil {
			config.Logger.Warnf("failed to mark visuals requested on post %s: %v", p.ID.Hex(), merr)
		}
		queued = append(queued, p.ID.Hex())
	}

	return &dto.GenerateVisualsResponse{Queued: len(queued), PostIDs: queued}, nil
}
