// Package goals derives personalized daily targets from a user's physical
// profile: BMR via Mifflin-St Jeor, TDEE via activity multipliers, then
// goal-specific overrides, health-condition adjustments and floors.
package goals

import (
	"math"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

// Defaults applied when a profile field is missing.
const (
	defaultWeight   = 70.0
	defaultHeight   = 170.0
	defaultAge      = 30
	defaultGender   = models.GenderMale
	defaultGoal     = models.GoalMaintainHealth
	defaultActivity = models.ActivityModerate
)

// Floors every computed config is clamped to.
const (
	minStepsGoal     = 5000
	minSleepGoal     = 7.0
	minNutritionGoal = 1200
	minWaterGoal     = 2.0
)

// Input is the physiological profile the calculator works from.
type Input struct {
	Weight           float64
	Height           float64
	Age              int
	Gender           string
	FitnessGoal      string
	ActivityLevel    string
	HealthConditions []string
}

// Config holds the derived daily targets.
type Config struct {
	StepsGoal     int     `json:"steps_goal"`
	SleepGoal     float64 `json:"sleep_goal"`
	NutritionGoal int     `json:"nutrition_goal"`
	WaterGoal     float64 `json:"water_goal"`
}

// InputFromUser applies the documented defaults for unset profile fields.
func InputFromUser(u *models.User) Input {
	in := Input{
		Weight:        defaultWeight,
		Height:        defaultHeight,
		Age:           defaultAge,
		Gender:        defaultGender,
		FitnessGoal:   defaultGoal,
		ActivityLevel: defaultActivity,
	}
	if u == nil {
		return in
	}
	if u.Weight != nil {
		in.Weight = *u.Weight
	}
	if u.Height != nil {
		in.Height = *u.Height
	}
	if u.Age != nil {
		in.Age = *u.Age
	}
	if u.Gender != nil {
		in.Gender = *u.Gender
	}
	if u.FitnessGoal != nil {
		in.FitnessGoal = *u.FitnessGoal
	}
	if u.ActivityLevel != nil {
		in.ActivityLevel = *u.ActivityLevel
	}
	in.HealthConditions = u.HealthConditions
	return in
}

// BMR implements the Mifflin-St Jeor equation. Any gender other than "Male"
// uses the female constant.
func BMR(weight, height float64, age int, gender string) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back to
// the sedentary multiplier.
func TDEE(bmr float64, activityLevel string) float64 {
	switch activityLevel {
	case models.ActivitySedentary:
		return bmr * 1.2
	case models.ActivityModerate:
		return bmr * 1.55
	case models.ActivityActive:
		return bmr * 1.725
	default:
		return bmr * 1.2
	}
}

// Compute derives the daily goal config. Deterministic, no I/O.
func Compute(in Input) Config {
	tdee := TDEE(BMR(in.Weight, in.Height, in.Age, in.Gender), in.ActivityLevel)

	cfg := Config{
		StepsGoal:     10000,
		SleepGoal:     8,
		NutritionGoal: round(tdee),
		WaterGoal:     2.5,
	}

	switch in.FitnessGoal {
	case models.GoalLoseWeight:
		cfg.StepsGoal = stepsByActivity(in.ActivityLevel, 12000, 10000, 8000)
		cfg.NutritionGoal = round(tdee * 0.8)
		cfg.WaterGoal = 3.0
	case models.GoalGainMuscle:
		cfg.StepsGoal = stepsByActivity(in.ActivityLevel, 8000, 7000, 6000)
		cfg.NutritionGoal = round(tdee * 1.1)
		cfg.WaterGoal = 3.5
		cfg.SleepGoal = 8.5
	default:
		cfg.StepsGoal = stepsByActivity(in.ActivityLevel, 12000, 10000, 7000)
	}

	conditions := conditionSet(in.HealthConditions)
	if conditions[models.ConditionHeartCondition] || conditions[models.ConditionHypertension] {
		cfg.StepsGoal = min(cfg.StepsGoal, 8000)
		cfg.NutritionGoal = round(float64(cfg.NutritionGoal) * 0.95)
	}
	if conditions[models.ConditionDiabetes] {
		cfg.StepsGoal = max(cfg.StepsGoal, 8000)
		cfg.NutritionGoal = round(float64(cfg.NutritionGoal) * 0.9)
	}
	if conditions[models.ConditionKneeInjury] || conditions[models.ConditionBackPain] {
		cfg.StepsGoal = min(cfg.StepsGoal, 7000)
	}
	if conditions[models.ConditionAsthma] {
		cfg.StepsGoal = min(cfg.StepsGoal, 8000)
	}

	if in.Gender == models.GenderMale {
		cfg.WaterGoal += 0.5
	}
	if in.Age > 50 {
		cfg.SleepGoal = 7.5
		cfg.WaterGoal += 0.5
	}
	if in.Weight > 80 {
		cfg.WaterGoal += 0.5
	} else if in.Weight < 60 {
		cfg.WaterGoal -= 0.3
	}

	cfg.StepsGoal = max(cfg.StepsGoal, minStepsGoal)
	cfg.SleepGoal = math.Max(cfg.SleepGoal, minSleepGoal)
	cfg.NutritionGoal = max(cfg.NutritionGoal, minNutritionGoal)
	cfg.WaterGoal = math.Max(cfg.WaterGoal, minWaterGoal)

	return cfg
}

func stepsByActivity(level string, active, moderate, sedentary int) int {
	switch level {
	case models.ActivityActive:
		return active
	case models.ActivityModerate:
		return moderate
	default:
		return sedentary
	}
}

func conditionSet(conditions []string) map[string]bool {
	set := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		set[c] = true
	}
	return set
}

func round(v float64) int {
	return int(math.Round(v))
}
