package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adforge/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("generated_posts")}
}

// UpsertByCampaignAndPlatform upserts a post uniquely identified by (campaign_id, platform).
// Regenerating text for a platform replaces the body and resets the visual fields.
func (r *PostRepository) UpsertByCampaignAndPlatform(ctx context.Context, p *models.GeneratedPost) (*models.GeneratedPost, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"campaign_id": p.CampaignID, "platform": p.Platform}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": p.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":       p.UpdatedAt,
			"status":           p.Status,
			"campaign_id":      p.CampaignID,
			"platform":         p.Platform,
			"body":             p.Body,
			"hashtags":         p.Hashtags,
			"engagement_score": p.EngagementScore,
			"image_url":        p.ImageURL,
			"video_url":        p.VideoURL,
			"model_name":       p.ModelName,
			"error":            p.Error,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out models.GeneratedPost
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID returns a post by its ObjectID hex.
func (r *PostRepository) FindByID(ctx context.Context, hexID string) (*models.GeneratedPost, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	var p models.GeneratedPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByCampaign returns all posts belonging to a campaign, newest first.
func (r *PostRepository) ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.GeneratedPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"campaign_id": campaignID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.GeneratedPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateVisuals sets media URLs, the error string and the visuals_generated flag.
// 다른 상태 필드는 건드리지 않으므로, 향후 PostStatusFlags 필드가 늘어나더라도 안전하다.
func (r *PostRepository) UpdateVisuals(ctx context.Context, postID primitive.ObjectID, imageURL, videoURL string, genErr *string) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$set": bson.M{
			"image_url":                imageURL,
			"video_url":                videoURL,
			"error":                    genErr,
			"status.visuals_generated": true,
			"updated_at":               time.Now(),
		},
	})
	return err
}

// MarkVisualsRequested records when visual generation was queued for a post.
func (r *PostRepository) MarkVisualsRequested(ctx context.Context, postID primitive.ObjectID, at time.Time) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$set": bson.M{"visuals_requested_at": at},
	})
	return err
}

// FindStaleVisuals returns posts whose visuals were requested before cutoff
// but never completed. Used by the worker's recovery pass.
func (r *PostRepository) FindStaleVisuals(ctx context.Context, cutoff time.Time, limit int64) ([]models.GeneratedPost, error) {
	filter := bson.M{
		"status.visuals_generated": false,
		"visuals_requested_at":     bson.M{"$ne": nil, "$lt": cutoff},
	}
	opts := options.Find().SetSort(bson.D{{Key: "visuals_requested_at", Value: 1}}).SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.GeneratedPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
