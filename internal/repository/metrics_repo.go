package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RebeyMasota/fittrack-backend/internal/database"
	"github.com/RebeyMasota/fittrack-backend/internal/goals"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

// MetricsRepository manages the per-user daily metrics records, keyed by
// (user_id, date-truncated-to-midnight). All writes are atomic upserts; the
// unique index on (user_id, date) prevents duplicate-day records when two
// first-requests-of-the-day race.
type MetricsRepository struct {
	coll *mongo.Collection
}

func NewMetricsRepository(db *mongo.Database) *MetricsRepository {
	return &MetricsRepository{coll: db.Collection(database.UserMetricsCollection)}
}

func (r *MetricsRepository) GetForDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*models.UserMetrics, error) {
	var metrics models.UserMetrics
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&metrics)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("metrics for date: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("metrics for date: %w", err)
	}
	return &metrics, nil
}

// EnsureForDate returns the day's record, creating it with zero progress and
// the given goal config when it does not exist yet.
func (r *MetricsRepository) EnsureForDate(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error) {
	update := bson.M{
		"$setOnInsert": insertDefaults(userID, date, cfg),
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var metrics models.UserMetrics
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID, "date": date}, update, opts).Decode(&metrics)
	if err != nil {
		return nil, fmt.Errorf("ensure metrics: %w", err)
	}
	return &metrics, nil
}

// UpdateGoals overwrites the day's goal fields, leaving accumulated progress
// untouched. Creates the record if the day has none yet.
func (r *MetricsRepository) UpdateGoals(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error) {
	update := bson.M{
		"$set": bson.M{
			"steps_goal":     cfg.StepsGoal,
			"sleep_goal":     cfg.SleepGoal,
			"nutrition_goal": cfg.NutritionGoal,
			"water_goal":     cfg.WaterGoal,
			"updated_at":     time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"steps":          0,
			"sleep_hours":    0.0,
			"nutrition_kcal": 0,
			"water_liters":   0.0,
			"created_at":     time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var metrics models.UserMetrics
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID, "date": date}, update, opts).Decode(&metrics)
	if err != nil {
		return nil, fmt.Errorf("update metric goals: %w", err)
	}
	return &metrics, nil
}

func (r *MetricsRepository) AddSteps(ctx context.Context, userID primitive.ObjectID, date time.Time, steps int, cfg goals.Config) (*models.UserMetrics, error) {
	return r.addProgress(ctx, userID, date, "steps", steps, cfg)
}

func (r *MetricsRepository) AddNutrition(ctx context.Context, userID primitive.ObjectID, date time.Time, kcal int, cfg goals.Config) (*models.UserMetrics, error) {
	return r.addProgress(ctx, userID, date, "nutrition_kcal", kcal, cfg)
}

func (r *MetricsRepository) AddWater(ctx context.Context, userID primitive.ObjectID, date time.Time, liters float64, cfg goals.Config) (*models.UserMetrics, error) {
	return r.addProgress(ctx, userID, date, "water_liters", liters, cfg)
}

// SetSleep records last night's sleep as an absolute value rather than an
// increment.
func (r *MetricsRepository) SetSleep(ctx context.Context, userID primitive.ObjectID, date time.Time, hours float64, cfg goals.Config) (*models.UserMetrics, error) {
	defaults := insertDefaults(userID, date, cfg)
	delete(defaults, "sleep_hours")

	update := bson.M{
		"$set":         bson.M{"sleep_hours": hours, "updated_at": time.Now().UTC()},
		"$setOnInsert": defaults,
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var metrics models.UserMetrics
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID, "date": date}, update, opts).Decode(&metrics)
	if err != nil {
		return nil, fmt.Errorf("set sleep: %w", err)
	}
	return &metrics, nil
}

func (r *MetricsRepository) addProgress(ctx context.Context, userID primitive.ObjectID, date time.Time, field string, delta any, cfg goals.Config) (*models.UserMetrics, error) {
	defaults := insertDefaults(userID, date, cfg)
	delete(defaults, field)

	update := bson.M{
		"$inc":         bson.M{field: delta},
		"$set":         bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": defaults,
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var metrics models.UserMetrics
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID, "date": date}, update, opts).Decode(&metrics)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", field, err)
	}
	return &metrics, nil
}

func insertDefaults(userID primitive.ObjectID, date time.Time, cfg goals.Config) bson.M {
	return bson.M{
		"steps":          0,
		"steps_goal":     cfg.StepsGoal,
		"sleep_hours":    0.0,
		"sleep_goal":     cfg.SleepGoal,
		"nutrition_kcal": 0,
		"nutrition_goal": cfg.NutritionGoal,
		"water_liters":   0.0,
		"water_goal":     cfg.WaterGoal,
		"created_at":     time.Now().UTC(),
	}
}
