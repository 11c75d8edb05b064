package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"adforge/cmd/api/dto"
	"adforge/models"
	"adforge/repositories"
)

// CampaignService encapsulates business logic for campaigns and DTO mapping.
type CampaignService struct {
	campaigns *repositories.CampaignRepository
	posts     *repositories.PostRepository
}

func NewCampaignService(campaigns *repositories.CampaignRepository, posts *repositories.PostRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns, posts: posts}
}

const defaultCreativity = 0.7

// Create stores a new campaign. Creativity 는 0..1 범위로 클램프하고,
// 생략 시 기본값을 적용한다.
func (s *CampaignService) Create(ctx context.Context, in dto.CreateCampaignRequest) (*dto.CampaignDTO, error) {
	creativity := defaultCreativity
	if in.Creativity != nil {
		creativity = *in.Creativity
	}
	if creativity < 0 {
		creativity = 0
	}
	if creativity > 1 {
		creativity = 1
	}

	now := time.Now()
	c := models.Campaign{
		CreatedAt:           now,
		UpdatedAt:           now,
		BusinessDescription: in.BusinessDescription,
		Objective:           in.Objective,
		TargetAudience:      in.TargetAudience,
		CampaignType:        in.CampaignType,
		Creativity:          creativity,
		SourceURLs:          in.SourceURLs,
	}
	res, err := s.campaigns.Insert(ctx, &c)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	out := mapCampaignToDTO(c)
	return &out, nil
}

// GetByID loads a campaign by its ObjectID hex and returns a DTO
func (s *CampaignService) GetByID(ctx context.Context, hexID string) (*dto.CampaignDTO, error) {
	c, err := s.campaigns.FindByID(ctx, hexID)
	if err != nil {
		return nil, err
	}
	out := mapCampaignToDTO(*c)
	return &out, nil
}

// List returns a page of campaigns sorted by created_at desc.
func (s *CampaignService) List(ctx context.Context, page, pageSize int) (dto.Pagination[dto.CampaignDTO], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	items, total, err := s.campaigns.List(ctx, page, pageSize)
	if err != nil {
		return dto.Pagination[dto.CampaignDTO]{}, err
	}
	out := make([]dto.CampaignDTO, 0, len(items))
	for _, c := range items {
		out = append(out, mapCampaignToDTO(c))
	}
	return dto.Pagination[dto.CampaignDTO]{
		Data:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// ListPosts returns every generated post of a campaign.
func (s *CampaignService) ListPosts(ctx context.Context, campaignHexID string) ([]dto.PostDTO, error) {
	c, err := s.campaigns.FindByID(ctx, campaignHexID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, mapPostToDTO(p))
	}
	return out, nil
}
