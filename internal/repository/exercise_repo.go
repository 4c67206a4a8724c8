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

// ExerciseFilter narrows exercise lookups; zero values mean "any".
type ExerciseFilter struct {
	Type         string
	MuscleGroup  string
	MuscleGroups []string
	Difficulty   string
	Equipment    []string
}

func (f ExerciseFilter) bson() bson.M {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.MuscleGroup != "" {
		filter["muscle_group"] = f.MuscleGroup
	} else if len(f.MuscleGroups) > 0 {
		filter["muscle_group"] = bson.M{"$in": f.MuscleGroups}
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if len(f.Equipment) > 0 {
		filter["equipment_needed"] = bson.M{"$in": f.Equipment}
	}
	return filter
}

type ExerciseRepository struct {
	coll *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{coll: db.Collection(database.ExercisesCollection)}
}

func (r *ExerciseRepository) Find(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	return findRecent[models.Exercise](ctx, r.coll, filter.bson(), 0)
}

func (r *ExerciseRepository) FindOne(ctx context.Context, filter ExerciseFilter) (*models.Exercise, error) {
	return findOneRecent[models.Exercise](ctx, r.coll, filter.bson())
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error) {
	return getByID[models.Exercise](ctx, r.coll, id)
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, exercise)
	if err != nil {
		return err
	}
	exercise.ID = oid
	return nil
}
