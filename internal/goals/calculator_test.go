package goals

import (
	"math"
	"testing"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

func TestBMR(t *testing.T) {
	male := BMR(70, 170, 30, models.GenderMale)
	if male != 1617.5 {
		t.Errorf("Expected male BMR 1617.5, got %v", male)
	}

	female := BMR(58, 165, 28, models.GenderFemale)
	if female != 1310.25 {
		t.Errorf("Expected female BMR 1310.25, got %v", female)
	}
}

func TestTDEEUnknownLevelFallsBackToSedentary(t *testing.T) {
	if got := TDEE(1000, "couch"); got != 1200 {
		t.Errorf("Expected sedentary multiplier for unknown level, got %v", got)
	}
	if got := TDEE(1000, models.ActivityActive); got != 1725 {
		t.Errorf("Expected active multiplier 1.725, got %v", got)
	}
}

func TestComputeDefaultsProfile(t *testing.T) {
	cfg := Compute(InputFromUser(nil))

	expected := Config{StepsGoal: 10000, SleepGoal: 8, NutritionGoal: 2507, WaterGoal: 3.0}
	if cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, cfg)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	in := Input{
		Weight:        58,
		Height:        165,
		Age:           28,
		Gender:        models.GenderFemale,
		FitnessGoal:   models.GoalLoseWeight,
		ActivityLevel: models.ActivityActive,
	}

	first := Compute(in)
	expected := Config{StepsGoal: 12000, SleepGoal: 8, NutritionGoal: 1808, WaterGoal: 2.7}
	if first != expected {
		t.Errorf("Expected %+v, got %+v", expected, first)
	}
	for i := 0; i < 5; i++ {
		if got := Compute(in); got != first {
			t.Fatalf("Compute is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestComputeGainMuscleOlderHeavyMale(t *testing.T) {
	cfg := Compute(Input{
		Weight:        85,
		Height:        180,
		Age:           55,
		Gender:        models.GenderMale,
		FitnessGoal:   models.GoalGainMuscle,
		ActivityLevel: models.ActivitySedentary,
	})

	if cfg.StepsGoal != 6000 {
		t.Errorf("Expected steps goal 6000, got %d", cfg.StepsGoal)
	}
	// Age over 50 overrides the muscle-gain sleep bump.
	if cfg.SleepGoal != 7.5 {
		t.Errorf("Expected sleep goal 7.5, got %v", cfg.SleepGoal)
	}
	if cfg.NutritionGoal != 2251 {
		t.Errorf("Expected nutrition goal 2251, got %d", cfg.NutritionGoal)
	}
	if math.Abs(cfg.WaterGoal-5.0) > 1e-9 {
		t.Errorf("Expected water goal 5.0, got %v", cfg.WaterGoal)
	}
}

func TestComputeConditionAdjustmentsApplyInOrder(t *testing.T) {
	cfg := Compute(Input{
		Weight:           70,
		Height:           170,
		Age:              30,
		Gender:           models.GenderMale,
		FitnessGoal:      models.GoalLoseWeight,
		ActivityLevel:    models.ActivityModerate,
		HealthConditions: []string{models.ConditionDiabetes, models.ConditionHeartCondition},
	})

	if cfg.StepsGoal != 8000 {
		t.Errorf("Expected steps goal 8000, got %d", cfg.StepsGoal)
	}
	// Heart cap runs before the diabetes reduction: 2006 -> 1906 -> 1715.
	if cfg.NutritionGoal != 1715 {
		t.Errorf("Expected nutrition goal 1715, got %d", cfg.NutritionGoal)
	}
}

func TestComputeKneeInjuryCapsSteps(t *testing.T) {
	cfg := Compute(Input{
		Weight:           70,
		Height:           170,
		Age:              30,
		Gender:           models.GenderMale,
		FitnessGoal:      models.GoalLoseWeight,
		ActivityLevel:    models.ActivityActive,
		HealthConditions: []string{models.ConditionKneeInjury},
	})

	if cfg.StepsGoal != 7000 {
		t.Errorf("Expected knee injury to cap steps at 7000, got %d", cfg.StepsGoal)
	}
}

func TestComputeFloors(t *testing.T) {
	cfg := Compute(Input{
		Weight:        40,
		Height:        140,
		Age:           80,
		Gender:        models.GenderFemale,
		FitnessGoal:   models.GoalLoseWeight,
		ActivityLevel: models.ActivitySedentary,
	})

	if cfg.NutritionGoal != 1200 {
		t.Errorf("Expected nutrition floor 1200, got %d", cfg.NutritionGoal)
	}
	if cfg.SleepGoal < 7.0 {
		t.Errorf("Sleep goal below floor: %v", cfg.SleepGoal)
	}
	if cfg.WaterGoal < 2.0 {
		t.Errorf("Water goal below floor: %v", cfg.WaterGoal)
	}
}

func TestInputFromUserAppliesDefaults(t *testing.T) {
	age := 45
	user := &models.User{Age: &age}

	in := InputFromUser(user)
	if in.Age != 45 {
		t.Errorf("Expected age 45, got %d", in.Age)
	}
	if in.Weight != 70 || in.Height != 170 {
		t.Errorf("Expected default weight/height, got %v/%v", in.Weight, in.Height)
	}
	if in.Gender != models.GenderMale || in.FitnessGoal != models.GoalMaintainHealth {
		t.Errorf("Expected default gender and goal, got %q/%q", in.Gender, in.FitnessGoal)
	}
}
