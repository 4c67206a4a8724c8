package handlers

import (
	"strings"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/services"
)

var allowedGenders = map[string]struct{}{
	models.GenderMale:   {},
	models.GenderFemale: {},
}

var allowedFitnessGoals = map[string]struct{}{
	models.GoalLoseWeight:     {},
	models.GoalGainMuscle:     {},
	models.GoalMaintainHealth: {},
}

var allowedActivityLevels = map[string]struct{}{
	models.ActivitySedentary: {},
	models.ActivityModerate:  {},
	models.ActivityActive:    {},
}

var allowedHealthConditions = map[string]struct{}{
	models.ConditionNone:           {},
	models.ConditionDiabetes:       {},
	models.ConditionHypertension:   {},
	models.ConditionHeartCondition: {},
	models.ConditionKneeInjury:     {},
	models.ConditionBackPain:       {},
	models.ConditionAsthma:         {},
}

var allowedWorkoutTypes = map[string]struct{}{
	models.WorkoutStrength: {},
	models.WorkoutCardio:   {},
	models.WorkoutYoga:     {},
	models.WorkoutHIIT:     {},
	models.WorkoutPilates:  {},
}

func validateCompleteProfileRequest(req services.CompleteProfileInput) string {
	if req.Age <= 0 || req.Age > 120 {
		return "age must be between 1 and 120"
	}
	if req.Weight <= 0 {
		return "weight must be greater than 0"
	}
	if req.Height <= 0 {
		return "height must be greater than 0"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if err := validateFitnessGoal(req.FitnessGoal); err != "" {
		return err
	}
	if err := validateActivityLevel(req.ActivityLevel); err != "" {
		return err
	}
	if err := validateHealthConditions(req.HealthConditions); err != "" {
		return err
	}
	if req.PreferredWorkoutTypes != nil {
		if err := validateWorkoutTypes(req.PreferredWorkoutTypes); err != "" {
			return err
		}
	}
	return ""
}

func validateUpdateProfileRequest(req services.UpdateProfileInput) string {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return "name must not be empty"
	}
	if req.Age != nil && (*req.Age <= 0 || *req.Age > 120) {
		return "age must be between 1 and 120"
	}
	if req.Weight != nil && *req.Weight <= 0 {
		return "weight must be greater than 0"
	}
	if req.Height != nil && *req.Height <= 0 {
		return "height must be greater than 0"
	}
	if req.Gender != nil {
		if err := validateGender(*req.Gender); err != "" {
			return err
		}
	}
	if req.FitnessGoal != nil {
		if err := validateFitnessGoal(*req.FitnessGoal); err != "" {
			return err
		}
	}
	if req.ActivityLevel != nil {
		if err := validateActivityLevel(*req.ActivityLevel); err != "" {
			return err
		}
	}
	if req.HealthConditions != nil {
		if err := validateHealthConditions(req.HealthConditions); err != "" {
			return err
		}
	}
	if req.PreferredWorkoutTypes != nil {
		if err := validateWorkoutTypes(req.PreferredWorkoutTypes); err != "" {
			return err
		}
	}
	return ""
}

func validateGender(gender string) string {
	if _, ok := allowedGenders[gender]; !ok {
		return "gender must be one of: Male, Female"
	}
	return ""
}

func validateFitnessGoal(goal string) string {
	if _, ok := allowedFitnessGoals[goal]; !ok {
		return "fitness_goal must be one of: Lose Weight, Gain Muscle, Maintain Health"
	}
	return ""
}

func validateActivityLevel(level string) string {
	if _, ok := allowedActivityLevels[level]; !ok {
		return "activity_level must be one of: Sedentary, Moderate, Active"
	}
	return ""
}

func validateHealthConditions(conditions []string) string {
	for _, condition := range conditions {
		if _, ok := allowedHealthConditions[condition]; !ok {
			return "health_conditions contains an unknown value: " + condition
		}
	}
	return ""
}

func validateWorkoutTypes(workoutTypes []string) string {
	for _, workoutType := range workoutTypes {
		if _, ok := allowedWorkoutTypes[workoutType]; !ok {
			return "preferred_workout_types contains an unknown value: " + workoutType
		}
	}
	return ""
}
