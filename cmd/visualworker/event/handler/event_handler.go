package handler

import (
	"context"
	"sync"

	"adforge/cmd/visualworker/event/dispatcher"
	"adforge/config"
	"adforge/events"
	"adforge/generator"
	"adforge/quota"
	"adforge/repositories"
)

type EventHandlers struct {
	eventDispatcher *dispatcher.EventDispatcher
	generationQuota *quota.GenerationQuotaLimiter
	campaigns       *repositories.CampaignRepository
	posts           *repositories.PostRepository
}

func NewEventHandlers(
	eventDispatcher *dispatcher.EventDispatcher,
	generationQuota *quota.GenerationQuotaLimiter,
	campaigns *repositories.CampaignRepository,
	posts *repositories.PostRepository,
) *EventHandlers {
	return &EventHandlers{
		eventDispatcher: eventDispatcher,
		generationQuota: generationQuota,
		campaigns:       campaigns,
		posts:           posts,
	}
}

// HandleVisualGenerationRequested generates an image and a video for one post.
// 이미지와 비디오는 동시에 생성하고, 실패한 쪽만 플레이스홀더로 대체한다.
// 결과는 항상 저장되므로 한 번 소비된 이벤트는 재시도하지 않는다.
func (h *EventHandlers) HandleVisualGenerationRequested(ctx context.Context, event *events.VisualGenerationRequestedEvent) error {
	config.Logger.Infof("handling VisualGenerationRequested for post: %s", event.PostID.Hex())

	allowed, err := h.generationQuota.WaitAndReserve(ctx)
	if err != nil {
		config.Logger.Errorf("failed to apply generation quota for post %s: %v", event.PostID.Hex(), err)
		return err
	}

	var imageURL, videoURL string
	var genErr *string

	if !allowed {
		config.Logger.Warnf("daily generation quota exceeded, using placeholder visuals for post %s", event.PostID.Hex())
		reason := "daily generation quota exceeded"
		imageURL = generator.PlaceholderImageURL
		videoURL = generator.PlaceholderVideoURL
		genErr = &reason
	} else {
		prompt := h.visualPromptFor(ctx, event)

		// 이미지와 비디오를 병렬로 생성한다. 비디오는 long-running 폴링이라
		// 수 분이 걸릴 수 있다.
		var wg sync.WaitGroup
		var imageDegraded, videoDegraded *string
		wg.Add(2)
		go func() {
			defer wg.Done()
			imageURL, imageDegraded = generator.GenerateImage(ctx, prompt, event.PostID.Hex())
		}()
		go func() {
			defer wg.Done()
			videoURL, videoDegraded = generator.GenerateVideo(ctx, prompt)
		}()
		wg.Wait()

		genErr = joinReasons(imageDegraded, videoDegraded)
	}

	if err := h.posts.UpdateVisuals(ctx, event.PostID, imageURL, videoURL, genErr); err != nil {
		config.Logger.Errorf("failed to persist visuals for post %s: %v", event.PostID.Hex(), err)
		return err
	}

	if err := h.eventDispatcher.PublishVisualGenerated(ctx, event.PostID, imageURL, videoURL, genErr); err != nil {
		config.Logger.Errorf("failed to publish VisualGenerated event: %v", err)
		return err
	}

	config.Logger.Infof("visual generation completed for post: %s", event.PostID.Hex())
	return nil
}

// visualPromptFor builds the visual prompt, enriched with the campaign's
// business context when available. 캠페인 조회 실패는 본문만으로 진행한다.
func (h *EventHandlers) visualPromptFor(ctx context.Context, event *events.VisualGenerationRequestedEvent) string {
	var summary *string
	campaign, err := h.campaigns.FindByID(ctx, event.CampaignID.Hex())
	if err != nil {
		config.Logger.Warnf("failed to load campaign %s for visual prompt: %v", event.CampaignID.Hex(), err)
	} else if campaign.BusinessContext != nil && campaign.BusinessContext.Summary != "" {
		summary = &campaign.BusinessContext.Summary
	}
	return generator.VisualPrompt(event.Platform, event.Body, summary)
}

func joinReasons(reasons ...*string) *string {
	var joined string
	for _, r := range reasons {
		if r == nil {
			continue
		}
		if joined != "" {
			joined += "; "
		}
		joined += *r
	}
	if joined == "" {
		return nil
	}
	return &joined
}
