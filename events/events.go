package events

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	VisualGenerationRequested EventType = "visual.generation_requested"
	VisualGenerated           EventType = "visual.generated"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// VisualGenerationRequestedEvent 포스트 비주얼 생성 파이프라인 트리거 이벤트
type VisualGenerationRequestedEvent struct {
	BaseEvent
	PostID     primitive.ObjectID `json:"post_id"`
	CampaignID primitive.ObjectID `json:"campaign_id"`
	Platform   string             `json:"platform"`
	Body       string             `json:"body"`
}

// VisualGeneratedEvent 이미지/비디오 생성 완료 이벤트
type VisualGeneratedEvent struct {
	BaseEvent
	PostID   primitive.ObjectID `json:"post_id"`
	ImageURL string             `json:"image_url"`
	VideoURL string             `json:"video_url"`
	Error    *string            `json:"error,omitempty"`
}

// SerializeEvent 이벤트를 JSON으로 직렬화하고 타입 정보 반환
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case VisualGenerationRequestedEvent:
		eventType = e.Type
	case VisualGeneratedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent 이벤트 타입에 따라 적절한 구조체로 역직렬화
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case VisualGenerationRequested:
		event = &VisualGenerationRequestedEvent{}
	case VisualGenerated:
		event = &VisualGeneratedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
