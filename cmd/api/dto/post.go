package dto

import "time"

// PostStatusDTO exposes post processing progress
type PostStatusDTO struct {
	TextGenerated    bool `json:"textGenerated"`
	VisualsGenerated bool `json:"visualsGenerated"`
}

// PostDTO exposes one generated social post.
// ID and CampaignID are hex strings; Error carries the degradation reason
// when a placeholder was substituted for a failed generation.
type PostDTO struct {
	ID              string        `json:"id"`
	CampaignID      string        `json:"campaignId"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Status          PostStatusDTO `json:"status"`
	Platform        string        `json:"platform"`
	Body            string        `json:"body"`
	Hashtags        []string      `json:"hashtags"`
	EngagementScore int           `json:"engagementScore"`
	ImageURL        string        `json:"imageUrl"`
	VideoURL        string        `json:"videoUrl"`
	ModelName       string        `json:"modelName"`
	Error           *string       `json:"error,omitempty"`
}
