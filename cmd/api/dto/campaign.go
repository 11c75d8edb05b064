package dto

import "time"

// CreateCampaignRequest is the inbound payload for campaign creation.
// API 표면은 camelCase, 저장 모델은 snake_case 를 사용한다. 변환은 services 에서 수행한다.
type CreateCampaignRequest struct {
	BusinessDescription string   `json:"businessDescription" binding:"required"`
	Objective           string   `json:"objective"`
	TargetAudience      string   `json:"targetAudience"`
	CampaignType        string   `json:"campaignType"`
	Creativity          *float64 `json:"creativity"`
	SourceURLs          []string `json:"sourceUrls"`
}

// CampaignStatusDTO exposes campaign processing progress
type CampaignStatusDTO struct {
	ContextExtracted bool `json:"contextExtracted"`
	PostsGenerated   bool `json:"postsGenerated"`
}

// BusinessContextDTO is the public shape of an extracted business context.
// Extras carries model-reported keys outside the fixed schema, already
// converted to camelCase.
type BusinessContextDTO struct {
	Summary     string         `json:"summary"`
	Industry    string         `json:"industry"`
	BrandTone   string         `json:"brandTone"`
	KeyProducts []string       `json:"keyProducts"`
	Keywords    []string       `json:"keywords"`
	Extras      map[string]any `json:"extras,omitempty"`
	ModelName   string         `json:"modelName"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// CampaignDTO exposes the fields needed for API consumers.
// ID is a hex string to keep transport simple.
type CampaignDTO struct {
	ID                  string              `json:"id"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	Status              CampaignStatusDTO   `json:"status"`
	BusinessDescription string              `json:"businessDescription"`
	Objective           string              `json:"objective"`
	TargetAudience      string              `json:"targetAudience"`
	CampaignType        string              `json:"campaignType"`
	Creativity          float64             `json:"creativity"`
	SourceURLs          []string            `json:"sourceUrls"`
	BusinessContext     *BusinessContextDTO `json:"businessContext,omitempty"`
}
