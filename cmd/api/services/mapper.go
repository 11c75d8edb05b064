package services

import (
	"adforge/cmd/api/dto"
	"adforge/fieldcase"
	"adforge/models"
)

// mapCampaignToDTO converts a stored campaign into its public shape.
// Extras 키는 내부 snake_case 로 저장되므로 여기서 camelCase 로 변환한다.
func mapCampaignToDTO(c models.Campaign) dto.CampaignDTO {
	out := dto.CampaignDTO{
		ID:        c.ID.Hex(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Status: dto.CampaignStatusDTO{
			ContextExtracted: c.Status.ContextExtracted,
			PostsGenerated:   c.Status.PostsGenerated,
		},
		BusinessDescription: c.BusinessDescription,
		Objective:           c.Objective,
		TargetAudience:      c.TargetAudience,
		CampaignType:        c.CampaignType,
		Creativity:          c.Creativity,
		SourceURLs:          c.SourceURLs,
	}
	if c.BusinessContext != nil {
		bc := mapBusinessContextToDTO(*c.BusinessContext)
		out.BusinessContext = &bc
	}
	return out
}

func mapBusinessContextToDTO(bc models.BusinessContext) dto.BusinessContextDTO {
	return dto.BusinessContextDTO{
		Summary:     bc.Summary,
		Industry:    bc.Industry,
		BrandTone:   bc.BrandTone,
		KeyProducts: bc.KeyProducts,
		Keywords:    bc.Keywords,
		Extras:      fieldcase.MapToCamel(bc.Extras),
		ModelName:   bc.ModelName,
		GeneratedAt: bc.GeneratedAt,
	}
}

func mapPostToDTO(p models.GeneratedPost) dto.PostDTO {
	return dto.PostDTO{
		ID:         p.ID.Hex(),
		CampaignID: p.CampaignID.Hex(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Status: dto.PostStatusDTO{
			TextGenerated:    p.Status.TextGenerated,
			VisualsGenerated: p.Status.VisualsGenerated,
		},
		Platform:        p.Platform,
		Body:            p.Body,
		Hashtags:        p.Hashtags,
		EngagementScore: p.EngagementScore,
		ImageURL:        p.ImageURL,
		VideoURL:        p.VideoURL,
		ModelName:       p.ModelName,
		Error:           p.Error,
	}
}
