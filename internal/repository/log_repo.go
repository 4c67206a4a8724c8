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

type WorkoutLogRepository struct {
	coll *mongo.Collection
}

func NewWorkoutLogRepository(db *mongo.Database) *WorkoutLogRepository {
	return &WorkoutLogRepository{coll: db.Collection(database.WorkoutLogsCollection)}
}

func (r *WorkoutLogRepository) Create(ctx context.Context, log *models.WorkoutLog) error {
	log.CreatedAt = time.Now().UTC()

	oid, err := insertOne(ctx, r.coll, log)
	if err != nil {
		return err
	}
	log.ID = oid
	return nil
}

func (r *WorkoutLogRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.WorkoutLog, error) {
	return findRecent[models.WorkoutLog](ctx, r.coll, bson.M{"user_id": userID}, limit)
}

type MealLogRepository struct {
	coll *mongo.Collection
}

func NewMealLogRepository(db *mongo.Database) *MealLogRepository {
	return &MealLogRepository{coll: db.Collection(database.MealLogsCollection)}
}

func (r *MealLogRepository) Create(ctx context.Context, log *models.MealLog) error {
	log.CreatedAt = time.Now().UTC()

	oid, err := insertOne(ctx, r.coll, log)
	if err != nil {
		return err
	}
	log.ID = oid
	return nil
}

func (r *MealLogRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.MealLog, error) {
	return findRecent[models.MealLog](ctx, r.coll, bson.M{"user_id": userID}, limit)
}
