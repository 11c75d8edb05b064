package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignStatusFlags represents processing progress of a campaign
//
//	context_extracted: 비즈니스 컨텍스트 추출이 저장됨
//	posts_generated: 텍스트 포스트 생성이 저장됨
type CampaignStatusFlags struct {
	ContextExtracted bool `bson:"context_extracted" json:"context_extracted"`
	PostsGenerated   bool `bson:"posts_generated" json:"posts_generated"`
}

// Campaign represents a marketing campaign document
// Collection: campaigns
type Campaign struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updated_at"`
	Status              CampaignStatusFlags `bson:"status" json:"status"`
	BusinessDescription string              `bson:"business_description" json:"business_description"`
	Objective           string              `bson:"objective" json:"objective"`
	TargetAudience      string              `bson:"target_audience" json:"target_audience"`
	CampaignType        string              `bson:"campaign_type" json:"campaign_type"`
	Creativity          float64             `bson:"creativity" json:"creativity"`
	SourceURLs          []string            `bson:"source_urls" json:"source_urls"`
	BusinessContext     *BusinessContext    `bson:"business_context,omitempty" json:"business_context,omitempty"`
}

// BusinessContext nested info in Campaign (denormalized snapshot)
// Stored under campaigns.business_context
// Extras keeps model-reported fields that have no fixed schema; keys stay
// snake_case internally and are converted at the API boundary.
type BusinessContext struct {
	Summary     string         `bson:"summary" json:"summary"`
	Industry    string         `bson:"industry" json:"industry"`
	BrandTone   string         `bson:"brand_tone" json:"brand_tone"`
	KeyProducts []string       `bson:"key_products" json:"key_products"`
	Keywords    []string       `bson:"keywords" json:"keywords"`
	Extras      map[string]any `bson:"extras,omitempty" json:"extras,omitempty"`
	ModelName   string         `bson:"model_name" json:"model_name"`
	GeneratedAt time.Time      `bson:"generated_at" json:"generated_at"`
}
