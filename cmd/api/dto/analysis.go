package dto

// AnalyzeURLRequest asks for business-context extraction from a web page
// or RSS feed. CampaignID is optional; when present the result is also
// saved onto that campaign.
type AnalyzeURLRequest struct {
	URL        string  `json:"url" binding:"required"`
	CampaignID *string `json:"campaignId"`
}

// AnalyzeURLResponse wraps the extracted context with its source.
type AnalyzeURLResponse struct {
	SourceURL       string             `json:"sourceUrl"`
	BusinessContext BusinessContextDTO `json:"businessContext"`
}
