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

// MealFilter narrows meal lookups; zero values mean "any".
type MealFilter struct {
	DietaryTags []string
	MinProtein  float64
	MaxCalories int
}

func (f MealFilter) bson() bson.M {
	filter := bson.M{}
	if len(f.DietaryTags) > 0 {
		filter["dietary_tags"] = bson.M{"$in": f.DietaryTags}
	}
	if f.MinProtein > 0 {
		filter["macros.protein"] = bson.M{"$gte": f.MinProtein}
	}
	if f.MaxCalories > 0 {
		filter["calories"] = bson.M{"$lte": f.MaxCalories}
	}
	return filter
}

type MealRepository struct {
	coll *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{coll: db.Collection(database.MealsCollection)}
}

func (r *MealRepository) Find(ctx context.Context, filter MealFilter) ([]models.Meal, error) {
	return findRecent[models.Meal](ctx, r.coll, filter.bson(), 0)
}

func (r *MealRepository) FindOne(ctx context.Context, filter MealFilter) (*models.Meal, error) {
	return findOneRecent[models.Meal](ctx, r.coll, filter.bson())
}

func (r *MealRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	return getByID[models.Meal](ctx, r.coll, id)
}

func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	oid, err := insertOne(ctx, r.coll, meal)
	if err != nil {
		return err
	}
	meal.ID = oid
	return nil
}
