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

type HealthTipRepository struct {
	coll *mongo.Collection
}

func NewHealthTipRepository(db *mongo.Database) *HealthTipRepository {
	return &HealthTipRepository{coll: db.Collection(database.HealthTipsCollection)}
}

func (r *HealthTipRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.HealthTip, error) {
	return findRecent[models.HealthTip](ctx, r.coll, filter, limit)
}

func (r *HealthTipRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.HealthTip, error) {
	return getByID[models.HealthTip](ctx, r.coll, id)
}

func (r *HealthTipRepository) Create(ctx context.Context, tip *models.HealthTip) error {
	now := time.Now().UTC()
	tip.CreatedAt = now
	tip.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, tip)
	if err != nil {
		return err
	}
	tip.ID = oid
	return nil
}

func (r *HealthTipRepository) Update(ctx context.Context, id primitive.ObjectID, tip models.HealthTip) (*models.HealthTip, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tip.ID = id
	tip.CreatedAt = existing.CreatedAt
	tip.UpdatedAt = time.Now().UTC()
	if err := replaceOne(ctx, r.coll, id, tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

func (r *HealthTipRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id)
}
