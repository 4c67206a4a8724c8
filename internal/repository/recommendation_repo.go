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

type RecommendationRepository struct {
	coll *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{coll: db.Collection(database.RecommendationsCollection)}
}

// FindOne returns the most recently created recommendation matching filter,
// or ErrNotFound.
func (r *RecommendationRepository) FindOne(ctx context.Context, filter bson.M) (*models.Recommendation, error) {
	return findOneRecent[models.Recommendation](ctx, r.coll, filter)
}

func (r *RecommendationRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Recommendation, error) {
	return findRecent[models.Recommendation](ctx, r.coll, filter, limit)
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	return getByID[models.Recommendation](ctx, r.coll, id)
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, rec)
	if err != nil {
		return err
	}
	rec.ID = oid
	return nil
}

func (r *RecommendationRepository) Update(ctx context.Context, id primitive.ObjectID, rec models.Recommendation) (*models.Recommendation, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.ID = id
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	if err := replaceOne(ctx, r.coll, id, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id)
}
