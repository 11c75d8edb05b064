package dto

// GenerateContentRequest asks for text post generation on a campaign.
// Platforms is optional; empty means every configured platform.
type GenerateContentRequest struct {
	CampaignID string   `json:"campaignId" binding:"required"`
	Platforms  []string `json:"platforms"`
}

// GenerateVisualsRequest queues image/video generation for existing posts.
// PostIDs is optional; empty means every text-generated post of the campaign.
type GenerateVisualsRequest struct {
	CampaignID string   `json:"campaignId" binding:"required"`
	PostIDs    []string `json:"postIds"`
}

// GenerateVisualsResponse reports how many posts were queued.
type GenerateVisualsResponse struct {
	Queued  int      `json:"queued"`
	PostIDs []string `json:"postIds"`
}
