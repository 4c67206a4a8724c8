package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RebeyMasota/fittrack-backend/internal/database"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

type DidYouKnowRepository struct {
	coll *mongo.Collection
}

func NewDidYouKnowRepository(db *mongo.Database) *DidYouKnowRepository {
	return &DidYouKnowRepository{coll: db.Collection(database.DidYouKnowCollection)}
}

func (r *DidYouKnowRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.DidYouKnow, error) {
	return findRecent[models.DidYouKnow](ctx, r.coll, filter, limit)
}

func (r *DidYouKnowRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DidYouKnow, error) {
	return getByID[models.DidYouKnow](ctx, r.coll, id)
}

func (r *DidYouKnowRepository) Create(ctx context.Context, item *models.DidYouKnow) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, item)
	if err != nil {
		return err
	}
	item.ID = oid
	return nil
}

func (r *DidYouKnowRepository) Update(ctx context.Context, id primitive.ObjectID, item models.DidYouKnow) (*models.DidYouKnow, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	if err := replaceOne(ctx, r.coll, id, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *DidYouKnowRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id)
}
