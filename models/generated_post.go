package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostStatusFlags represents processing progress of a generated post
type PostStatusFlags struct {
	TextGenerated    bool `bson:"text_generated" json:"text_generated"`
	VisualsGenerated bool `bson:"visuals_generated" json:"visuals_generated"`
}

// GeneratedPost represents a generated social post document
// Collection: generated_posts
// One document per (campaign_id, platform); regeneration upserts in place.
type GeneratedPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Status          PostStatusFlags    `bson:"status" json:"status"`
	CampaignID      primitive.ObjectID `bson:"campaign_id" json:"campaign_id"`
	Platform        string             `bson:"platform" json:"platform"`
	Body            string             `bson:"body" json:"body"`
	Hashtags        []string           `bson:"hashtags" json:"hashtags"`
	EngagementScore int                `bson:"engagement_score" json:"engagement_score"`
	ImageURL        string             `bson:"image_url" json:"image_url"`
	VideoURL        string             `bson:"video_url" json:"video_url"`
	ModelName       string             `bson:"model_name" json:"model_name"`
	Error           *string            `bson:"error,omitempty" json:"error,omitempty"`

	// 비주얼 생성이 큐잉된 시각. 워커의 복구 패스가 이 값으로 유실 건을 찾는다.
	VisualsRequestedAt *time.Time `bson:"visuals_requested_at,omitempty" json:"visuals_requested_at,omitempty"`
}
