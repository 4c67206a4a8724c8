package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryWorkout   = "workout"
	CategoryNutrition = "nutrition"
	CategoryHydration = "hydration"
	CategoryRest      = "rest"
)

// RecommendationCategories lists the catalog categories in their evaluation
// order. Assembled output preserves this order on priority ties.
var RecommendationCategories = []string{
	CategoryWorkout,
	CategoryNutrition,
	CategoryHydration,
	CategoryRest,
}

type RecommendationStep struct {
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Image       *string `bson:"image,omitempty" json:"image,omitempty"`
	Duration    *int    `bson:"duration,omitempty" json:"duration,omitempty"`
}

type Article struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

type Recommendation struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Category       string               `bson:"category" json:"category"`
	Title          string               `bson:"title" json:"title"`
	Description    string               `bson:"description" json:"description"`
	Image          *string              `bson:"image,omitempty" json:"image,omitempty"`
	Steps          []RecommendationStep `bson:"steps,omitempty" json:"steps,omitempty"`
	Tips           []string             `bson:"tips,omitempty" json:"tips,omitempty"`
	Articles       []Article            `bson:"articles,omitempty" json:"articles,omitempty"`
	Macros         *Macros              `bson:"macros,omitempty" json:"macros,omitempty"`
	Calories       *int                 `bson:"calories,omitempty" json:"calories,omitempty"`
	Reminders      []string             `bson:"reminders,omitempty" json:"reminders,omitempty"`
	DailyGoalMl    *int                 `bson:"daily_goal_ml,omitempty" json:"daily_goal_ml,omitempty"`
	SleepGoalHours *float64             `bson:"sleep_goal_hours,omitempty" json:"sleep_goal_hours,omitempty"`
	ContentFilters `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// RecommendationCard is an assembled, priority-tagged recommendation built
// from the live catalog and today's metrics rather than stored documents.
type RecommendationCard struct {
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Exercise    *Exercise `json:"exercise,omitempty"`
	Meal        *Meal     `json:"meal,omitempty"`
}
