package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	GoalLoseWeight     = "Lose Weight"
	GoalGainMuscle     = "Gain Muscle"
	GoalMaintainHealth = "Maintain Health"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	// GenderBoth is valid on content items only, never on users.
	GenderBoth = "Both"
)

const (
	ActivitySedentary = "Sedentary"
	ActivityModerate  = "Moderate"
	ActivityActive    = "Active"
)

const (
	ConditionNone           = "None"
	ConditionDiabetes       = "Diabetes"
	ConditionHypertension   = "Hypertension"
	ConditionHeartCondition = "Heart Condition"
	ConditionKneeInjury     = "Knee Injury"
	ConditionBackPain       = "Back Pain"
	ConditionAsthma         = "Asthma"
)

const (
	WorkoutStrength = "Strength"
	WorkoutCardio   = "Cardio"
	WorkoutYoga     = "Yoga"
	WorkoutHIIT     = "HIIT"
	WorkoutPilates  = "Pilates"
)

type APITokens struct {
	Fitbit    *string `bson:"fitbit,omitempty" json:"fitbit,omitempty"`
	GoogleFit *string `bson:"google_fit,omitempty" json:"google_fit,omitempty"`
}

type User struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                    string             `bson:"email" json:"email"`
	PasswordHash             string             `bson:"password_hash" json:"-"`
	Role                     string             `bson:"role" json:"role"`
	Name                     *string            `bson:"name,omitempty" json:"name,omitempty"`
	Age                      *int               `bson:"age,omitempty" json:"age,omitempty"`
	Weight                   *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	Height                   *float64           `bson:"height,omitempty" json:"height,omitempty"`
	Gender                   *string            `bson:"gender,omitempty" json:"gender,omitempty"`
	FitnessGoal              *string            `bson:"fitness_goal,omitempty" json:"fitness_goal,omitempty"`
	DietaryPreference        *string            `bson:"dietary_preference,omitempty" json:"dietary_preference,omitempty"`
	HealthConditions         []string           `bson:"health_conditions,omitempty" json:"health_conditions,omitempty"`
	ActivityLevel            *string            `bson:"activity_level,omitempty" json:"activity_level,omitempty"`
	PreferredWorkoutTypes    []string           `bson:"preferred_workout_types,omitempty" json:"preferred_workout_types,omitempty"`
	DietaryRestrictions      []string           `bson:"dietary_restrictions,omitempty" json:"dietary_restrictions,omitempty"`
	BMI                      *float64           `bson:"bmi,omitempty" json:"bmi,omitempty"`
	APITokens                *APITokens         `bson:"api_tokens,omitempty" json:"-"`
	IsProfileComplete        bool               `bson:"is_profile_complete" json:"is_profile_complete"`
	LastRecommendationUpdate *time.Time         `bson:"last_recommendation_update,omitempty" json:"last_recommendation_update,omitempty"`
	CreatedAt                time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt                time.Time          `bson:"updated_at" json:"updated_at"`
}
