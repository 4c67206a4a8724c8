package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
	pushws "github.com/RebeyMasota/fittrack-backend/internal/websocket"
)

type stubRecUserStore struct {
	user        *models.User
	lastUpdates []time.Time
}

func (s *stubRecUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.user == nil {
		return nil, repository.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRecUserStore) SetLastRecommendationUpdate(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	s.lastUpdates = append(s.lastUpdates, at)
	return nil
}

type stubRecStore struct {
	filters []bson.M
	// byCategory answers personalized queries; defaults answers the
	// all-fields-unset fallback.
	byCategory map[string]*models.Recommendation
	defaults   map[string]*models.Recommendation
}

func (s *stubRecStore) FindOne(ctx context.Context, filter bson.M) (*models.Recommendation, error) {
	s.filters = append(s.filters, filter)
	category, _ := filter["category"].(string)

	if isDefaultFilter(filter) {
		if rec, ok := s.defaults[category]; ok {
			return rec, nil
		}
		return nil, repository.ErrNotFound
	}
	if rec, ok := s.byCategory[category]; ok {
		return rec, nil
	}
	return nil, repository.ErrNotFound
}

func isDefaultFilter(filter bson.M) bool {
	and, ok := filter["$and"].(bson.A)
	if !ok || len(and) == 0 {
		return false
	}
	first, ok := and[0].(bson.M)
	if !ok {
		return false
	}
	cond, ok := first["fitness_goal"].(bson.M)
	if !ok {
		return false
	}
	return cond["$exists"] == false
}

func (s *stubRecStore) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRecStore) Create(ctx context.Context, rec *models.Recommendation) error {
	return errors.New("not implemented")
}

func (s *stubRecStore) Update(ctx context.Context, id primitive.ObjectID, rec models.Recommendation) (*models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRecStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errors.New("not implemented")
}

type stubExercisePicker struct {
	filters  []repository.ExerciseFilter
	exercise *models.Exercise
}

func (s *stubExercisePicker) FindOne(ctx context.Context, filter repository.ExerciseFilter) (*models.Exercise, error) {
	s.filters = append(s.filters, filter)
	if s.exercise == nil {
		return nil, repository.ErrNotFound
	}
	return s.exercise, nil
}

type stubMealPicker struct {
	filters []repository.MealFilter
	meal    *models.Meal
}

func (s *stubMealPicker) FindOne(ctx context.Context, filter repository.MealFilter) (*models.Meal, error) {
	s.filters = append(s.filters, filter)
	if s.meal == nil {
		return nil, repository.ErrNotFound
	}
	return s.meal, nil
}

type stubMetricsProvider struct {
	metrics *models.UserMetrics
}

func (s *stubMetricsProvider) EnsureToday(ctx context.Context, user *models.User) (*models.UserMetrics, error) {
	return s.metrics, nil
}

type stubPublisher struct {
	userIDs []string
	updates []pushws.Update
}

func (s *stubPublisher) Publish(userID string, update pushws.Update) {
	s.userIDs = append(s.userIDs, userID)
	s.updates = append(s.updates, update)
}

func recTestUser(goal, activity string, conditions ...string) *models.User {
	return &models.User{
		ID:               primitive.NewObjectID(),
		Role:             models.RoleUser,
		FitnessGoal:      &goal,
		ActivityLevel:    &activity,
		HealthConditions: conditions,
	}
}

func TestGetRecommendationsFallsBackToDefaultItem(t *testing.T) {
	user := recTestUser(models.GoalLoseWeight, models.ActivityModerate)
	store := &stubRecStore{
		byCategory: map[string]*models.Recommendation{
			models.CategoryWorkout: {Category: models.CategoryWorkout, Title: "Targeted"},
		},
		defaults: map[string]*models.Recommendation{
			models.CategoryHydration: {Category: models.CategoryHydration, Title: "Default Hydration"},
		},
	}
	service := NewRecommendationService(&stubRecUserStore{user: user}, store, nil, nil, nil, nil)

	recs, err := service.GetRecommendations(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// workout resolves personalized, hydration via the default item,
	// nutrition and rest have neither and are omitted.
	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d: %+v", len(recs), recs)
	}
	if recs[0].Title != "Targeted" {
		t.Errorf("Expected personalized workout first, got %q", recs[0].Title)
	}
	if recs[1].Title != "Default Hydration" {
		t.Errorf("Expected default hydration item, got %q", recs[1].Title)
	}
}

func TestGetRecommendationsSingleCategory(t *testing.T) {
	user := recTestUser(models.GoalGainMuscle, models.ActivityActive)
	store := &stubRecStore{
		byCategory: map[string]*models.Recommendation{
			models.CategoryRest: {Category: models.CategoryRest, Title: "Sleep"},
		},
	}
	service := NewRecommendationService(&stubRecUserStore{user: user}, store, nil, nil, nil, nil)

	recs, err := service.GetRecommendations(context.Background(), user.ID, models.CategoryRest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(recs) != 1 || recs[0].Category != models.CategoryRest {
		t.Fatalf("Expected only the rest category, got %+v", recs)
	}
	for _, filter := range store.filters {
		if filter["category"] != models.CategoryRest {
			t.Errorf("Unexpected category queried: %v", filter["category"])
		}
	}
}

func TestAssembleCardsOrdersByPriority(t *testing.T) {
	user := recTestUser(models.GoalLoseWeight, models.ActivityModerate)
	metrics := &models.UserMetrics{
		WaterLiters: 0.5, WaterGoal: 3.0,
		SleepHours: 5.0, SleepGoal: 8.0,
	}
	users := &stubRecUserStore{user: user}
	publisher := &stubPublisher{}
	service := NewRecommendationService(
		users,
		&stubRecStore{},
		&stubExercisePicker{exercise: &models.Exercise{Name: "Brisk Walking"}},
		&stubMealPicker{meal: &models.Meal{Name: "Lentil Curry", Calories: 420}},
		&stubMetricsProvider{metrics: metrics},
		publisher,
	)

	cards, err := service.AssembleCards(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	categories := make([]string, 0, len(cards))
	for _, card := range cards {
		categories = append(categories, card.Category)
	}
	expected := []string{
		models.CategoryHydration,
		models.CategoryWorkout,
		models.CategoryNutrition,
		models.CategoryRest,
	}
	if len(categories) != len(expected) {
		t.Fatalf("Expected %d cards, got %d: %v", len(expected), len(categories), categories)
	}
	for i, category := range expected {
		if categories[i] != category {
			t.Errorf("Position %d: expected %s, got %s", i, category, categories[i])
		}
	}

	if len(users.lastUpdates) != 1 {
		t.Errorf("Expected last recommendation update to be recorded once, got %d", len(users.lastUpdates))
	}
	if len(publisher.userIDs) != 1 || publisher.userIDs[0] != user.ID.Hex() {
		t.Errorf("Expected one publish to the user, got %v", publisher.userIDs)
	}
}

func TestAssembleCardsSkipsSatisfiedGoals(t *testing.T) {
	user := recTestUser(models.GoalMaintainHealth, models.ActivityModerate)
	metrics := &models.UserMetrics{
		WaterLiters: 2.5, WaterGoal: 3.0,
		SleepHours: 7.5, SleepGoal: 8.0,
	}
	service := NewRecommendationService(
		&stubRecUserStore{user: user},
		&stubRecStore{},
		&stubExercisePicker{},
		&stubMealPicker{},
		&stubMetricsProvider{metrics: metrics},
		&stubPublisher{},
	)

	cards, err := service.AssembleCards(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Maintain Health gets no workout card; hydration and rest are on
	// track, so only nutrition remains.
	if len(cards) != 1 || cards[0].Category != models.CategoryNutrition {
		t.Fatalf("Expected only the nutrition card, got %+v", cards)
	}
}

func TestWorkoutCardMuscleGainFilters(t *testing.T) {
	user := recTestUser(models.GoalGainMuscle, models.ActivitySedentary, models.ConditionKneeInjury)
	picker := &stubExercisePicker{exercise: &models.Exercise{Name: "Dumbbell Row", MuscleGroup: "Back"}}
	metrics := &models.UserMetrics{WaterLiters: 3, WaterGoal: 3, SleepHours: 8, SleepGoal: 8}
	service := NewRecommendationService(
		&stubRecUserStore{user: user},
		&stubRecStore{},
		picker,
		&stubMealPicker{},
		&stubMetricsProvider{metrics: metrics},
		&stubPublisher{},
	)

	cards, err := service.AssembleCards(context.Background(), user.ID, models.CategoryWorkout)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("Expected one workout card, got %d", len(cards))
	}
	if cards[0].Priority != priorityMuscleGain {
		t.Errorf("Expected priority %d, got %d", priorityMuscleGain, cards[0].Priority)
	}
	if cards[0].Exercise == nil || cards[0].Exercise.Name != "Dumbbell Row" {
		t.Errorf("Expected the picked exercise on the card, got %+v", cards[0].Exercise)
	}

	filter := picker.filters[0]
	if filter.Type != models.WorkoutStrength {
		t.Errorf("Expected strength exercises, got %q", filter.Type)
	}
	if filter.Difficulty != models.LevelBeginner {
		t.Errorf("Sedentary users get beginner difficulty, got %q", filter.Difficulty)
	}
	if len(filter.Equipment) != 2 {
		t.Errorf("Knee injury must restrict equipment, got %v", filter.Equipment)
	}
}

func TestWorkoutCardOmittedWhenNoExerciseMatches(t *testing.T) {
	metrics := &models.UserMetrics{WaterLiters: 3, WaterGoal: 3, SleepHours: 8, SleepGoal: 8}

	for _, goal := range []string{models.GoalGainMuscle, models.GoalLoseWeight} {
		user := recTestUser(goal, models.ActivityModerate)
		picker := &stubExercisePicker{}
		service := NewRecommendationService(
			&stubRecUserStore{user: user},
			&stubRecStore{},
			picker,
			&stubMealPicker{},
			&stubMetricsProvider{metrics: metrics},
			&stubPublisher{},
		)

		cards, err := service.AssembleCards(context.Background(), user.ID, models.CategoryWorkout)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", goal, err)
		}
		if len(cards) != 0 {
			t.Errorf("%s: expected no workout card without a matching exercise, got %+v", goal, cards)
		}
		if len(picker.filters) != 1 {
			t.Errorf("%s: expected one exercise lookup, got %d", goal, len(picker.filters))
		}
	}
}

func TestNutritionCardGoalThresholds(t *testing.T) {
	user := recTestUser(models.GoalGainMuscle, models.ActivityModerate)
	picker := &stubMealPicker{meal: &models.Meal{Name: "Grilled Chicken Bowl", Calories: 450, Macros: models.Macros{Protein: 38}}}
	metrics := &models.UserMetrics{WaterLiters: 3, WaterGoal: 3, SleepHours: 8, SleepGoal: 8}
	service := NewRecommendationService(
		&stubRecUserStore{user: user},
		&stubRecStore{},
		&stubExercisePicker{},
		picker,
		&stubMetricsProvider{metrics: metrics},
		&stubPublisher{},
	)

	if _, err := service.AssembleCards(context.Background(), user.ID, models.CategoryNutrition); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	filter := picker.filters[0]
	if filter.MinProtein != muscleGainProteinMin {
		t.Errorf("Muscle gain needs %vg protein minimum, got %v", muscleGainProteinMin, filter.MinProtein)
	}
	if filter.MaxCalories != defaultKcalMax {
		t.Errorf("Expected default calorie ceiling %d, got %d", defaultKcalMax, filter.MaxCalories)
	}
	if len(filter.DietaryTags) != 1 || filter.DietaryTags[0] != "None" {
		t.Errorf("Missing dietary preference must default to None, got %v", filter.DietaryTags)
	}
}
