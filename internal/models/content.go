package models

// RangeFilter is a closed interval; a profile value matches iff
// Min <= value <= Max. An absent range matches unconditionally.
type RangeFilter struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

func (r RangeFilter) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// ContentFilters carries the optional targeting attributes shared by every
// catalog document. An unset field means "applies to everyone"; "no
// constraint" is always stored as field absence, never as an explicit null.
type ContentFilters struct {
	FitnessGoal           *string      `bson:"fitness_goal,omitempty" json:"fitness_goal,omitempty"`
	Gender                *string      `bson:"gender,omitempty" json:"gender,omitempty"`
	AgeRange              *RangeFilter `bson:"age_range,omitempty" json:"age_range,omitempty"`
	WeightRange           *RangeFilter `bson:"weight_range,omitempty" json:"weight_range,omitempty"`
	HealthConditions      []string     `bson:"health_conditions,omitempty" json:"health_conditions,omitempty"`
	ActivityLevel         *string      `bson:"activity_level,omitempty" json:"activity_level,omitempty"`
	DietaryPreference     *string      `bson:"dietary_preference,omitempty" json:"dietary_preference,omitempty"`
	PreferredWorkoutTypes []string     `bson:"preferred_workout_types,omitempty" json:"preferred_workout_types,omitempty"`
	DietaryRestrictions   []string     `bson:"dietary_restrictions,omitempty" json:"dietary_restrictions,omitempty"`
}

// IsDefault reports whether every targeting attribute is unset, which makes
// the document the universal fallback for its category.
func (f ContentFilters) IsDefault() bool {
	return f.FitnessGoal == nil &&
		f.Gender == nil &&
		f.AgeRange == nil &&
		f.WeightRange == nil &&
		len(f.HealthConditions) == 0 &&
		f.ActivityLevel == nil &&
		f.DietaryPreference == nil &&
		len(f.PreferredWorkoutTypes) == 0 &&
		len(f.DietaryRestrictions) == 0
}
