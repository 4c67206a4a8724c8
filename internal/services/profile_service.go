package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type UserProfileStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
}

type GoalRefresher interface {
	EnsureToday(ctx context.Context, user *models.User) (*models.UserMetrics, error)
	RefreshTodayGoals(ctx context.Context, user *models.User) (*models.UserMetrics, error)
}

// CompleteProfileInput carries the full physiological profile captured
// during onboarding. All scalar fields are required at completion.
type CompleteProfileInput struct {
	Age                   int      `json:"age"`
	Weight                float64  `json:"weight"`
	Height                float64  `json:"height"`
	Gender                string   `json:"gender"`
	FitnessGoal           string   `json:"fitness_goal"`
	ActivityLevel         string   `json:"activity_level"`
	HealthConditions      []string `json:"health_conditions"`
	DietaryPreference     *string  `json:"dietary_preference"`
	PreferredWorkoutTypes []string `json:"preferred_workout_types"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
}

// UpdateProfileInput is a partial update: nil fields are left untouched.
type UpdateProfileInput struct {
	Name                  *string  `json:"name"`
	Age                   *int     `json:"age"`
	Weight                *float64 `json:"weight"`
	Height                *float64 `json:"height"`
	Gender                *string  `json:"gender"`
	FitnessGoal           *string  `json:"fitness_goal"`
	ActivityLevel         *string  `json:"activity_level"`
	HealthConditions      []string `json:"health_conditions"`
	DietaryPreference     *string  `json:"dietary_preference"`
	PreferredWorkoutTypes []string `json:"preferred_workout_types"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
}

type ProfileService struct {
	users   UserProfileStore
	metrics GoalRefresher
}

func NewProfileService(users UserProfileStore, metrics GoalRefresher) *ProfileService {
	return &ProfileService{users: users, metrics: metrics}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

// CompleteProfile stores the onboarding profile, derives BMI, marks the
// profile complete and seeds today's metrics with goals computed from
// the new attributes.
func (s *ProfileService) CompleteProfile(ctx context.Context, userID primitive.ObjectID, input CompleteProfileInput) (*models.User, error) {
	set := bson.M{
		"age":                 input.Age,
		"weight":              input.Weight,
		"height":              input.Height,
		"gender":              input.Gender,
		"fitness_goal":        input.FitnessGoal,
		"activity_level":      input.ActivityLevel,
		"health_conditions":   emptyIfNil(input.HealthConditions),
		"bmi":                 computeBMI(input.Weight, input.Height),
		"is_profile_complete": true,
		"updated_at":          time.Now().UTC(),
	}
	if input.DietaryPreference != nil {
		set["dietary_preference"] = *input.DietaryPreference
	}
	if input.PreferredWorkoutTypes != nil {
		set["preferred_workout_types"] = input.PreferredWorkoutTypes
	}
	if input.DietaryRestrictions != nil {
		set["dietary_restrictions"] = input.DietaryRestrictions
	}

	user, err := s.users.UpdateProfile(ctx, userID, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if _, err := s.metrics.RefreshTodayGoals(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. BMI is recomputed when
// weight or height change, and today's goal fields are refreshed when any
// attribute feeding the goal calculation changed.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input UpdateProfileInput) (*models.User, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	goalsAffected := false

	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Age != nil {
		set["age"] = *input.Age
		goalsAffected = true
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
		goalsAffected = true
	}
	if input.Height != nil {
		set["height"] = *input.Height
		goalsAffected = true
	}
	if input.Gender != nil {
		set["gender"] = *input.Gender
		goalsAffected = true
	}
	if input.FitnessGoal != nil {
		set["fitness_goal"] = *input.FitnessGoal
		goalsAffected = true
	}
	if input.ActivityLevel != nil {
		set["activity_level"] = *input.ActivityLevel
		goalsAffected = true
	}
	if input.HealthConditions != nil {
		set["health_conditions"] = input.HealthConditions
		goalsAffected = true
	}
	if input.DietaryPreference != nil {
		set["dietary_preference"] = *input.DietaryPreference
	}
	if input.PreferredWorkoutTypes != nil {
		set["preferred_workout_types"] = input.PreferredWorkoutTypes
	}
	if input.DietaryRestrictions != nil {
		set["dietary_restrictions"] = input.DietaryRestrictions
	}

	if input.Weight != nil || input.Height != nil {
		weight := floatOr(input.Weight, current.Weight)
		height := floatOr(input.Height, current.Height)
		if weight > 0 && height > 0 {
			set["bmi"] = computeBMI(weight, height)
		}
	}

	user, err := s.users.UpdateProfile(ctx, userID, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if goalsAffected {
		if _, err := s.metrics.RefreshTodayGoals(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func computeBMI(weight, height float64) float64 {
	meters := height / 100
	return math.Round(weight/(meters*meters)*100) / 100
}

func floatOr(override *float64, fallback *float64) float64 {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
