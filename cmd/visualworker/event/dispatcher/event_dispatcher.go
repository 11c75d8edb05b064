package dispatcher

import (
	"context"
	"fmt"
	"time"

	"adforge/eventbus"
	"adforge/events"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventDispatcher visualworker용 이벤트 발행 서비스
type EventDispatcher struct {
	bus eventbus.EventBus
}

// NewEventDispatcher 새로운 이벤트 디스패처 생성
func NewEventDispatcher(bus eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{
		bus: bus,
	}
}

// PublishVisualGenerated 이미지/비디오 생성 완료 이벤트 발행
func (s *EventDispatcher) PublishVisualGenerated(ctx context.Context, postID primitive.ObjectID, imageURL, videoURL string, genErr *string) error {
	e := events.VisualGeneratedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.VisualGenerated,
			Timestamp: time.Now(),
			Source:    "visualworker",
			Version:   "1.0",
		},
		PostID:   postID,
		ImageURL: imageURL,
		VideoURL: videoURL,
		Error:    genErr,
	}
	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicVisualEvents.Base(), evt)
}

// PublishVisualGenerationRequested 재처리용 비주얼 생성 요청 이벤트 발행
func (s *EventDispatcher) PublishVisualGenerationRequested(ctx context.Context, postID, campaignID primitive.ObjectID, platform, body string) error {
	e := events.VisualGenerationRequestedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.VisualGenerationRequested,
			Timestamp: time.Now(),
			Source:    "visualworker",
			Version:   "1.0",
		},
		PostID:     postID,
		CampaignID: campaignID,
		Platform:   platform,
		Body:       body,
	}
	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicVisualEvents.Base(), evt)
}
