package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/matching"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
	pushws "github.com/RebeyMasota/fittrack-backend/internal/websocket"
)

const (
	priorityHydration    = 9
	priorityMuscleGain   = 8
	priorityWeightLoss   = 7
	priorityNutrition    = 7
	priorityRest         = 6
	lowWaterFraction     = 0.5
	shortSleepFraction   = 0.8
	muscleGainProteinMin = 30.0
	defaultProteinMin    = 15.0
	weightLossKcalMax    = 500
	defaultKcalMax       = 800
)

type RecommendationStore interface {
	FindOne(ctx context.Context, filter bson.M) (*models.Recommendation, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.Recommendation, error)
	Create(ctx context.Context, rec *models.Recommendation) error
	Update(ctx context.Context, id primitive.ObjectID, rec models.Recommendation) (*models.Recommendation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ExercisePicker interface {
	FindOne(ctx context.Context, filter repository.ExerciseFilter) (*models.Exercise, error)
}

type MealPicker interface {
	FindOne(ctx context.Context, filter repository.MealFilter) (*models.Meal, error)
}

type RecommendationUserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetLastRecommendationUpdate(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

type TodayMetricsProvider interface {
	EnsureToday(ctx context.Context, user *models.User) (*models.UserMetrics, error)
}

type UpdatePublisher interface {
	Publish(userID string, update pushws.Update)
}

// RecommendationService resolves stored per-category recommendations for
// a profile and assembles the live card set from profile rules and
// today's progress.
type RecommendationService struct {
	users     RecommendationUserStore
	recs      RecommendationStore
	exercises ExercisePicker
	meals     MealPicker
	metrics   TodayMetricsProvider
	publisher UpdatePublisher
}

func NewRecommendationService(
	users RecommendationUserStore,
	recs RecommendationStore,
	exercises ExercisePicker,
	meals MealPicker,
	metrics TodayMetricsProvider,
	publisher UpdatePublisher,
) *RecommendationService {
	return &RecommendationService{
		users:     users,
		recs:      recs,
		exercises: exercises,
		meals:     meals,
		metrics:   metrics,
		publisher: publisher,
	}
}

// GetRecommendations returns at most one stored recommendation per
// category. A category with no profile match falls back to its
// default item, the one whose filter fields are all unset; a category
// with neither is omitted.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID primitive.ObjectID, category string) ([]models.Recommendation, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pred := matching.Build(matching.ProfileOf(user))
	results := make([]models.Recommendation, 0, len(models.RecommendationCategories))
	for _, cat := range s.categories(category) {
		filter := pred.BSON()
		filter["category"] = cat
		rec, err := s.recs.FindOne(ctx, filter)
		if errors.Is(err, repository.ErrNotFound) {
			fallback := matching.DefaultOnly()
			fallback["category"] = cat
			rec, err = s.recs.FindOne(ctx, fallback)
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
		}
		if err != nil {
			return nil, fmt.Errorf("find recommendation for %s: %w", cat, err)
		}
		results = append(results, *rec)
	}
	return results, nil
}

// AssembleCards builds the live recommendation card set for the user,
// ordered by priority descending, and pushes the result to the user's
// websocket subscribers.
func (s *RecommendationService) AssembleCards(ctx context.Context, userID primitive.ObjectID, category string) ([]models.RecommendationCard, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.metrics.EnsureToday(ctx, user)
	if err != nil {
		return nil, err
	}

	cards := make([]models.RecommendationCard, 0, 4)
	wants := func(cat string) bool { return category == "" || category == cat }

	if wants(models.CategoryWorkout) {
		if card := s.workoutCard(ctx, user); card != nil {
			cards = append(cards, *card)
		}
	}
	if wants(models.CategoryNutrition) {
		cards = append(cards, s.nutritionCard(ctx, user))
	}
	if wants(models.CategoryHydration) && metrics.WaterLiters < lowWaterFraction*metrics.WaterGoal {
		cards = append(cards, models.RecommendationCard{
			Category:    models.CategoryHydration,
			Title:       "Drink More Water",
			Description: fmt.Sprintf("You have logged %.1f of your %.1f liter goal today. Keep a bottle nearby and catch up before the evening.", metrics.WaterLiters, metrics.WaterGoal),
			Priority:    priorityHydration,
		})
	}
	if wants(models.CategoryRest) && metrics.SleepHours < shortSleepFraction*metrics.SleepGoal {
		cards = append(cards, models.RecommendationCard{
			Category:    models.CategoryRest,
			Title:       "Prioritize Recovery",
			Description: fmt.Sprintf("Last night's %.1f hours fell short of your %.1f hour goal. Aim for an earlier wind-down tonight.", metrics.SleepHours, metrics.SleepGoal),
			Priority:    priorityRest,
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Priority > cards[j].Priority
	})

	now := time.Now().UTC()
	if err := s.users.SetLastRecommendationUpdate(ctx, user.ID, now); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.Publish(user.ID.Hex(), pushws.Update{
			Type:            "recommendations_update",
			Recommendations: cards,
			Timestamp:       now.Format(time.RFC3339),
		})
	}
	return cards, nil
}

// workoutCard picks an exercise matching the user's goal, activity level
// and relevant health conditions. Users without a weight loss or muscle
// gain goal get no workout card, and neither does a user whose filter
// matches no exercise in the catalog.
func (s *RecommendationService) workoutCard(ctx context.Context, user *models.User) *models.RecommendationCard {
	goal := stringValue(user.FitnessGoal)
	conditions := conditionLookup(user.HealthConditions)

	switch goal {
	case models.GoalGainMuscle:
		filter := repository.ExerciseFilter{
			Type:         models.WorkoutStrength,
			MuscleGroups: []string{"Chest", "Legs", "Back"},
			Difficulty:   models.LevelIntermediate,
		}
		if stringValue(user.ActivityLevel) == models.ActivitySedentary {
			filter.Difficulty = models.LevelBeginner
		}
		if conditions[models.ConditionKneeInjury] {
			filter.Equipment = []string{"None", "Dumbbells"}
		}
		exercise := s.pickExercise(ctx, filter)
		if exercise == nil {
			return nil
		}
		return &models.RecommendationCard{
			Category:    models.CategoryWorkout,
			Title:       "Strength Session",
			Description: fmt.Sprintf("Build muscle with %s, focused on your %s.", exercise.Name, exercise.MuscleGroup),
			Priority:    priorityMuscleGain,
			Exercise:    exercise,
		}
	case models.GoalLoseWeight:
		filter := repository.ExerciseFilter{
			Type:       models.WorkoutCardio,
			Difficulty: models.LevelBeginner,
		}
		if stringValue(user.ActivityLevel) == models.ActivityActive {
			filter.Difficulty = models.LevelIntermediate
		}
		if conditions[models.ConditionHeartCondition] {
			filter.Equipment = []string{"None"}
		}
		exercise := s.pickExercise(ctx, filter)
		if exercise == nil {
			return nil
		}
		return &models.RecommendationCard{
			Category:    models.CategoryWorkout,
			Title:       "Cardio Session",
			Description: fmt.Sprintf("Burn calories with %s at a pace you can hold.", exercise.Name),
			Priority:    priorityWeightLoss,
			Exercise:    exercise,
		}
	default:
		return nil
	}
}

func (s *RecommendationService) nutritionCard(ctx context.Context, user *models.User) models.RecommendationCard {
	preference := stringValue(user.DietaryPreference)
	if preference == "" {
		preference = "None"
	}

	filter := repository.MealFilter{
		DietaryTags: []string{preference},
		MinProtein:  defaultProteinMin,
		MaxCalories: defaultKcalMax,
	}
	if stringValue(user.FitnessGoal) == models.GoalGainMuscle {
		filter.MinProtein = muscleGainProteinMin
	}
	if stringValue(user.FitnessGoal) == models.GoalLoseWeight {
		filter.MaxCalories = weightLossKcalMax
	}

	card := models.RecommendationCard{
		Category:    models.CategoryNutrition,
		Title:       "Meal Suggestion",
		Description: "A meal matched to your dietary preference and goal.",
		Priority:    priorityNutrition,
	}
	meal, err := s.meals.FindOne(ctx, filter)
	if err == nil {
		card.Meal = meal
		card.Description = fmt.Sprintf("Try %s: %d kcal with %.0fg of protein.", meal.Name, meal.Calories, meal.Macros.Protein)
	}
	return card
}

func (s *RecommendationService) pickExercise(ctx context.Context, filter repository.ExerciseFilter) *models.Exercise {
	exercise, err := s.exercises.FindOne(ctx, filter)
	if err != nil {
		return nil
	}
	return exercise
}

func (s *RecommendationService) CreateRecommendation(ctx context.Context, callerID primitive.ObjectID, rec *models.Recommendation) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	return s.recs.Create(ctx, rec)
}

func (s *RecommendationService) UpdateRecommendation(ctx context.Context, callerID, id primitive.ObjectID, rec models.Recommendation) (*models.Recommendation, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	updated, err := s.recs.Update(ctx, id, rec)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *RecommendationService) DeleteRecommendation(ctx context.Context, callerID, id primitive.ObjectID) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.recs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetAllRecommendations is the admin listing with an optional category
// equality filter.
func (s *RecommendationService) GetAllRecommendations(ctx context.Context, callerID primitive.ObjectID, category string) ([]models.Recommendation, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.recs.Find(ctx, equalityFilter("category", category), 0)
}

func (s *RecommendationService) categories(category string) []string {
	if category == "" {
		return models.RecommendationCategories
	}
	return []string{category}
}

func (s *RecommendationService) resolveUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *RecommendationService) requireAdmin(ctx context.Context, callerID primitive.ObjectID) error {
	user, err := s.resolveUser(ctx, callerID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		return ErrNotAuthorized
	}
	return nil
}

func conditionLookup(conditions []string) map[string]bool {
	set := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		set[c] = true
	}
	return set
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
