package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserMetrics is the per-user, per-calendar-day progress record. Goal fields
// are recomputed on profile changes; accumulated progress is never reset.
type UserMetrics struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Date          time.Time          `bson:"date" json:"date"`
	Steps         int                `bson:"steps" json:"steps"`
	StepsGoal     int                `bson:"steps_goal" json:"steps_goal"`
	SleepHours    float64            `bson:"sleep_hours" json:"sleep_hours"`
	SleepGoal     float64            `bson:"sleep_goal" json:"sleep_goal"`
	NutritionKcal int                `bson:"nutrition_kcal" json:"nutrition_kcal"`
	NutritionGoal int                `bson:"nutrition_goal" json:"nutrition_goal"`
	WaterLiters   float64            `bson:"water_liters" json:"water_liters"`
	WaterGoal     float64            `bson:"water_goal" json:"water_goal"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type WorkoutLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	ExerciseID  primitive.ObjectID `bson:"exercise_id" json:"exercise_id"`
	Duration    int                `bson:"duration" json:"duration"`
	Repetitions *int               `bson:"repetitions,omitempty" json:"repetitions,omitempty"`
	Sets        *int               `bson:"sets,omitempty" json:"sets,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type MealLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	MealID    primitive.ObjectID `bson:"meal_id" json:"meal_id"`
	Calories  int                `bson:"calories" json:"calories"`
	Macros    Macros             `bson:"macros" json:"macros"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
