package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adforge/models"
)

// ErrNotFound is returned when a document does not exist or an id is malformed.
var ErrNotFound = errors.New("resource not found")

type CampaignRepository struct {
	col *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{col: db.Collection("campaigns")}
}

// Insert inserts a new campaign document.
func (r *CampaignRepository) Insert(ctx context.Context, c *models.Campaign) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.SourceURLs == nil {
		c.SourceURLs = []string{}
	}
	return r.col.InsertOne(ctx, c)
}

// FindByID returns a campaign by its ObjectID hex.
func (r *CampaignRepository) FindByID(ctx context.Context, hexID string) (*models.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	var c models.Campaign
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns campaigns sorted by created_at desc with 1-based pagination.
func (r *CampaignRepository) List(ctx context.Context, page, pageSize int) ([]models.Campaign, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	campaigns := make([]models.Campaign, 0, pageSize)
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// UpdateBusinessContext sets business_context and the context_extracted flag.
func (r *CampaignRepository) UpdateBusinessContext(ctx context.Context, campaignID primitive.ObjectID, bc models.BusinessContext) error {
	_, err := r.col.UpdateByID(ctx, campaignID, bson.M{
		"$set": bson.M{
			"business_context":         bc,
			"status.context_extracted": true,
			"updated_at":               time.Now(),
		},
	})
	return err
}

// SetPostsGenerated updates only the status.posts_generated flag and updated_at.
// 다른 상태 필드는 건드리지 않으므로, 향후 CampaignStatusFlags 필드가 늘어나더라도 안전하다.
func (r *CampaignRepository) SetPostsGenerated(ctx context.Context, campaignID primitive.ObjectID, generated bool) error {
	_, err := r.col.UpdateByID(ctx, campaignID, bson.M{
		"$set": bson.M{
			"status.posts_generated": generated,
			"updated_at":             time.Now(),
		},
	})
	return err
}
