package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RebeyMasota/fittrack-backend/internal/database"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

type FeedRepository struct {
	coll *mongo.Collection
}

func NewFeedRepository(db *mongo.Database) *FeedRepository {
	return &FeedRepository{coll: db.Collection(database.SocialFeedCollection)}
}

func (r *FeedRepository) List(ctx context.Context, limit int64) ([]models.FeedPost, error) {
	return findRecent[models.FeedPost](ctx, r.coll, bson.M{}, limit)
}

func (r *FeedRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FeedPost, error) {
	return getByID[models.FeedPost](ctx, r.coll, id)
}

func (r *FeedRepository) Create(ctx context.Context, post *models.FeedPost) error {
	post.CreatedAt = time.Now().UTC()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.FeedComment{}
	}

	oid, err := insertOne(ctx, r.coll, post)
	if err != nil {
		return err
	}
	post.ID = oid
	return nil
}

// UpdateFields applies a partial update to the allowed post fields.
func (r *FeedRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.FeedPost, error) {
	if len(set) > 0 {
		res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("update post: %w", ErrNotFound)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *FeedRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id)
}

// AddLike and RemoveLike are separate atomic operations; the service decides
// which to call based on the post's current like set.
func (r *FeedRepository) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error) {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"likes": userID}}); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *FeedRepository) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error) {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"likes": userID}}); err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *FeedRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment models.FeedComment) (*models.FeedPost, error) {
	comment.CreatedAt = time.Now().UTC()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("add comment: %w", ErrNotFound)
	}
	return r.GetByID(ctx, id)
}
