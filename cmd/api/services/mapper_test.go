package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"adforge/models"
)

func TestMapCampaignToDTO(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	c := models.Campaign{
		ID:                  id,
		CreatedAt:           created,
		UpdatedAt:           created,
		Status:              models.CampaignStatusFlags{ContextExtracted: true},
		BusinessDescription: "핸드드립 원두를 파는 동네 로스터리",
		Objective:           "awareness",
		TargetAudience:      "20-30대 커피 애호가",
		CampaignType:        "launch",
		Creativity:          0.4,
		SourceURLs:          []string{"https://example.com"},
		BusinessContext: &models.BusinessContext{
			Summary:   "Local specialty coffee roastery",
			Industry:  "specialty coffee",
			BrandTone: "warm and artisanal",
			Keywords:  []string{"coffee", "roastery"},
			Extras: map[string]any{
				"social_links": []any{"https://instagram.com/example"},
				"store_info":   map[string]any{"opening_hours": "09-18"},
			},
			ModelName:   "gemini-2.0-flash",
			GeneratedAt: created,
		},
	}

	out := mapCampaignToDTO(c)

	assert.Equal(t, id.Hex(), out.ID)
	assert.True(t, out.Status.ContextExtracted)
	assert.False(t, out.Status.PostsGenerated)
	assert.Equal(t, 0.4, out.Creativity)

	require.NotNil(t, out.BusinessContext)
	// extras 키는 API 표면에서 camelCase 로 변환된다. 중첩 맵 포함.
	assert.Contains(t, out.BusinessContext.Extras, "socialLinks")
	assert.NotContains(t, out.BusinessContext.Extras, "social_links")
	store, ok := out.BusinessContext.Extras["storeInfo"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, store, "openingHours")
}

func TestMapPostToDTO(t *testing.T) {
	id := primitive.NewObjectID()
	campaignID := primitive.NewObjectID()
	reason := "image generation failed: quota"

	p := models.GeneratedPost{
		ID:              id,
		CampaignID:      campaignID,
		Status:          models.PostStatusFlags{TextGenerated: true, VisualsGenerated: true},
		Platform:        "instagram",
		Body:            "새 원두 출시!",
		Hashtags:        []string{"coffee", "roastery"},
		EngagementScore: 73,
		ImageURL:        "/media/img_abc.png",
		VideoURL:        "https://storage.googleapis.com/adforge-static/placeholder-video.mp4",
		ModelName:       "gemini-2.0-flash",
		Error:           &reason,
	}

	out := mapPostToDTO(p)

	assert.Equal(t, id.Hex(), out.ID)
	assert.Equal(t, campaignID.Hex(), out.CampaignID)
	assert.Equal(t, 73, out.EngagementScore)
	assert.True(t, out.Status.VisualsGenerated)
	require.NotNil(t, out.Error)
	assert.Equal(t, reason, *out.Error)
}
