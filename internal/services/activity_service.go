package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type WorkoutLogStore interface {
	Create(ctx context.Context, log *models.WorkoutLog) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.WorkoutLog, error)
}

type MealLogStore interface {
	Create(ctx context.Context, log *models.MealLog) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.MealLog, error)
}

type ExerciseGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error)
}

type MealGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
}

// ActivityService records workout and meal activity. Meal logging also
// folds the meal's calories into today's nutrition progress.
type ActivityService struct {
	users       UserGetter
	exercises   ExerciseGetter
	meals       MealGetter
	workoutLogs WorkoutLogStore
	mealLogs    MealLogStore
	metrics     *MetricsService
}

func NewActivityService(
	users UserGetter,
	exercises ExerciseGetter,
	meals MealGetter,
	workoutLogs WorkoutLogStore,
	mealLogs MealLogStore,
	metrics *MetricsService,
) *ActivityService {
	return &ActivityService{
		users:       users,
		exercises:   exercises,
		meals:       meals,
		workoutLogs: workoutLogs,
		mealLogs:    mealLogs,
		metrics:     metrics,
	}
}

type LogWorkoutInput struct {
	ExerciseID  primitive.ObjectID `json:"exercise_id"`
	Duration    int                `json:"duration"`
	Repetitions *int               `json:"repetitions"`
	Sets        *int               `json:"sets"`
}

func (s *ActivityService) LogWorkout(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (*models.WorkoutLog, error) {
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.exercises.GetByID(ctx, input.ExerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := &models.WorkoutLog{
		UserID:      userID,
		ExerciseID:  input.ExerciseID,
		Duration:    input.Duration,
		Repetitions: input.Repetitions,
		Sets:        input.Sets,
		Date:        time.Now().UTC(),
	}
	if err := s.workoutLogs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogMeal records the meal and adds its calories to today's nutrition
// progress. The meal's stored calorie value is authoritative.
func (s *ActivityService) LogMeal(ctx context.Context, userID, mealID primitive.ObjectID) (*models.MealLog, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	meal, err := s.meals.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := &models.MealLog{
		UserID:   userID,
		MealID:   mealID,
		Calories: meal.Calories,
		Macros:   meal.Macros,
		Date:     time.Now().UTC(),
	}
	if err := s.mealLogs.Create(ctx, entry); err != nil {
		return nil, err
	}
	if _, err := s.metrics.addNutrition(ctx, user, meal.Calories); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ActivityService) WorkoutHistory(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.WorkoutLog, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.workoutLogs.ListByUser(ctx, userID, limit)
}

func (s *ActivityService) MealHistory(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.MealLog, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.mealLogs.ListByUser(ctx, userID, limit)
}

func (s *ActivityService) resolveUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}
