package matching

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func fullProfile() Profile {
	return Profile{
		FitnessGoal:           strPtr(models.GoalLoseWeight),
		Gender:                strPtr(models.GenderFemale),
		Age:                   intPtr(34),
		Weight:                floatPtr(72.5),
		HealthConditions:      []string{models.ConditionKneeInjury},
		ActivityLevel:         strPtr(models.ActivityModerate),
		DietaryPreference:     strPtr("Vegetarian"),
		PreferredWorkoutTypes: []string{models.WorkoutYoga, models.WorkoutCardio},
		DietaryRestrictions:   []string{"Gluten-Free"},
	}
}

func TestEmptyProfileMatchesEverything(t *testing.T) {
	pred := Build(Profile{})

	if len(pred) != 0 {
		t.Fatalf("Expected no clauses, got %d", len(pred))
	}
	filter := pred.BSON()
	if len(filter) != 0 {
		t.Errorf("Expected empty filter, got %v", filter)
	}
	if !pred.Matches(models.ContentFilters{FitnessGoal: strPtr(models.GoalGainMuscle)}) {
		t.Errorf("Empty predicate must match any document")
	}
}

func TestUniversalDocumentMatchesAnyProfile(t *testing.T) {
	pred := Build(fullProfile())

	if len(pred) != 9 {
		t.Fatalf("Expected 9 clauses for a full profile, got %d", len(pred))
	}
	if !pred.Matches(models.ContentFilters{}) {
		t.Errorf("A document with no filters must match every profile")
	}
}

func TestGoalClauseRejectsMismatch(t *testing.T) {
	pred := Build(Profile{FitnessGoal: strPtr(models.GoalLoseWeight)})

	if !pred.Matches(models.ContentFilters{FitnessGoal: strPtr(models.GoalLoseWeight)}) {
		t.Errorf("Matching goal must pass")
	}
	if pred.Matches(models.ContentFilters{FitnessGoal: strPtr(models.GoalGainMuscle)}) {
		t.Errorf("Mismatched goal must fail")
	}
}

func TestGenderBothTargetsEitherGender(t *testing.T) {
	doc := models.ContentFilters{Gender: strPtr(models.GenderBoth)}

	for _, gender := range []string{models.GenderMale, models.GenderFemale} {
		pred := Build(Profile{Gender: strPtr(gender)})
		if !pred.Matches(doc) {
			t.Errorf("Gender %q must match a document targeting Both", gender)
		}
	}

	pred := Build(Profile{Gender: strPtr(models.GenderMale)})
	if pred.Matches(models.ContentFilters{Gender: strPtr(models.GenderFemale)}) {
		t.Errorf("Male profile must not match a Female-targeted document")
	}
}

func TestAgeRangeBoundsAreInclusive(t *testing.T) {
	doc := models.ContentFilters{AgeRange: &models.RangeFilter{Min: 30, Max: 40}}

	cases := []struct {
		age  int
		want bool
	}{
		{29, false},
		{30, true},
		{34, true},
		{40, true},
		{41, false},
	}
	for _, tc := range cases {
		pred := Build(Profile{Age: intPtr(tc.age)})
		if got := pred.Matches(doc); got != tc.want {
			t.Errorf("Age %d: expected match=%v, got %v", tc.age, tc.want, got)
		}
	}
}

func TestConditionOverlapIsSufficient(t *testing.T) {
	pred := Build(Profile{HealthConditions: []string{models.ConditionDiabetes, models.ConditionAsthma}})

	if !pred.Matches(models.ContentFilters{HealthConditions: []string{models.ConditionAsthma}}) {
		t.Errorf("Any overlap in health conditions must match")
	}
	if pred.Matches(models.ContentFilters{HealthConditions: []string{models.ConditionBackPain}}) {
		t.Errorf("Disjoint condition lists must not match")
	}
}

func TestPredicateBSONShape(t *testing.T) {
	filter := Build(Profile{FitnessGoal: strPtr(models.GoalGainMuscle)}).BSON()

	and, ok := filter["$and"].(bson.A)
	if !ok {
		t.Fatalf("Expected top-level $and, got %v", filter)
	}
	if len(and) != 1 {
		t.Fatalf("Expected one clause, got %d", len(and))
	}
	clause, ok := and[0].(bson.M)
	if !ok {
		t.Fatalf("Expected clause to be a document")
	}
	or, ok := clause["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("Expected goal clause to be an $or of value and unset, got %v", clause)
	}
}

func TestGoalOnlyFallback(t *testing.T) {
	filter := GoalOnly(Profile{FitnessGoal: strPtr(models.GoalMaintainHealth)})
	if filter["fitness_goal"] != models.GoalMaintainHealth {
		t.Errorf("Expected plain goal equality, got %v", filter)
	}

	if len(GoalOnly(Profile{})) != 0 {
		t.Errorf("Goal-less profile must fall back to an unconditional filter")
	}
}

func TestDefaultOnlyRequiresEveryFieldUnset(t *testing.T) {
	filter := DefaultOnly()

	and, ok := filter["$and"].(bson.A)
	if !ok {
		t.Fatalf("Expected top-level $and, got %v", filter)
	}
	if len(and) != len(filterFields) {
		t.Fatalf("Expected %d unset tests, got %d", len(filterFields), len(and))
	}
	for i, field := range filterFields {
		clause := and[i].(bson.M)
		cond, ok := clause[field].(bson.M)
		if !ok {
			t.Fatalf("Clause %d does not test field %q: %v", i, field, clause)
		}
		if cond["$exists"] != false {
			t.Errorf("Field %q must be tested with $exists:false", field)
		}
	}
}

func TestProfileOfNilUser(t *testing.T) {
	profile := ProfileOf(nil)
	if len(Build(profile)) != 0 {
		t.Errorf("Nil user must produce an empty predicate")
	}
}
