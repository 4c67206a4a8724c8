package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type ExerciseStore interface {
	Find(ctx context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) error
}

type MealStore interface {
	Find(ctx context.Context, filter repository.MealFilter) ([]models.Meal, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) error
}

// CatalogService serves the exercise and meal catalogs. When a query
// finds nothing locally it tops the collection up from the configured
// external source on a best effort basis: external failures are logged
// and the caller gets whatever the local collection holds.
type CatalogService struct {
	exercises ExerciseStore
	meals     MealStore
	wger      ExerciseSource
	edamam    MealSource
}

func NewCatalogService(exercises ExerciseStore, meals MealStore, wger ExerciseSource, edamam MealSource) *CatalogService {
	return &CatalogService{exercises: exercises, meals: meals, wger: wger, edamam: edamam}
}

func (s *CatalogService) GetExercises(ctx context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error) {
	exercises, err := s.exercises.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 || s.wger == nil {
		return exercises, nil
	}

	fetched, err := s.wger.FetchExercises(ctx, filter.Type)
	if err != nil {
		log.Printf("wger catalog fill failed: %v", err)
		return exercises, nil
	}
	for i := range fetched {
		if err := s.exercises.Create(ctx, &fetched[i]); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			log.Printf("store fetched exercise %q: %v", fetched[i].Name, err)
		}
	}
	return s.exercises.Find(ctx, filter)
}

func (s *CatalogService) GetExercise(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *CatalogService) GetMeals(ctx context.Context, filter repository.MealFilter) ([]models.Meal, error) {
	meals, err := s.meals.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(meals) > 0 || s.edamam == nil {
		return meals, nil
	}

	dietaryTag := ""
	if len(filter.DietaryTags) > 0 {
		dietaryTag = filter.DietaryTags[0]
	}
	fetched, err := s.edamam.FetchMeals(ctx, dietaryTag)
	if err != nil {
		log.Printf("edamam catalog fill failed: %v", err)
		return meals, nil
	}
	for i := range fetched {
		if err := s.meals.Create(ctx, &fetched[i]); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			log.Printf("store fetched meal %q: %v", fetched[i].Name, err)
		}
	}
	return s.meals.Find(ctx, filter)
}

func (s *CatalogService) GetMeal(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	meal, err := s.meals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meal, nil
}
