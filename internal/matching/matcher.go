// Package matching builds the layered predicate that selects catalog
// documents for a user profile. Every clause is a disjunction: a document
// matches when it explicitly targets the profile's value or leaves the
// attribute unset ("applies to everyone"). Clauses render to a Mongo filter
// and also evaluate in memory, so the tree is testable without a live store.
package matching

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

// filterFields lists every optional targeting attribute a catalog document
// can carry, in clause order.
var filterFields = []string{
	"fitness_goal",
	"gender",
	"age_range",
	"weight_range",
	"health_conditions",
	"activity_level",
	"dietary_preference",
	"preferred_workout_types",
	"dietary_restrictions",
}

// Profile is the matching-relevant snapshot of a user. Nil pointers and
// empty slices mean the attribute is not set and must not restrict results.
type Profile struct {
	FitnessGoal           *string
	Gender                *string
	Age                   *int
	Weight                *float64
	HealthConditions      []string
	ActivityLevel         *string
	DietaryPreference     *string
	PreferredWorkoutTypes []string
	DietaryRestrictions   []string
}

// ProfileOf derives the matching snapshot from a stored user record.
func ProfileOf(u *models.User) Profile {
	if u == nil {
		return Profile{}
	}
	return Profile{
		FitnessGoal:           u.FitnessGoal,
		Gender:                u.Gender,
		Age:                   u.Age,
		Weight:                u.Weight,
		HealthConditions:      u.HealthConditions,
		ActivityLevel:         u.ActivityLevel,
		DietaryPreference:     u.DietaryPreference,
		PreferredWorkoutTypes: u.PreferredWorkoutTypes,
		DietaryRestrictions:   u.DietaryRestrictions,
	}
}

// Clause is one conjunct of the predicate.
type Clause struct {
	filter  bson.M
	matches func(models.ContentFilters) bool
}

func (c Clause) BSON() bson.M                         { return c.filter }
func (c Clause) Matches(f models.ContentFilters) bool { return c.matches(f) }

// Predicate is the conjunction of all clauses contributed by present profile
// attributes. An empty predicate matches every document.
type Predicate []Clause

// BSON renders the predicate as a Mongo filter.
func (p Predicate) BSON() bson.M {
	if len(p) == 0 {
		return bson.M{}
	}
	and := make(bson.A, 0, len(p))
	for _, c := range p {
		and = append(and, c.filter)
	}
	return bson.M{"$and": and}
}

// Matches evaluates the predicate against a document's filter attributes.
func (p Predicate) Matches(f models.ContentFilters) bool {
	for _, c := range p {
		if !c.matches(f) {
			return false
		}
	}
	return true
}

// Build assembles the predicate for a profile. Absent attributes contribute
// no clause.
func Build(p Profile) Predicate {
	var pred Predicate

	if p.FitnessGoal != nil {
		pred = append(pred, equalsOrUnset("fitness_goal", *p.FitnessGoal,
			func(f models.ContentFilters) *string { return f.FitnessGoal }))
	}
	if p.Gender != nil {
		pred = append(pred, equalsOrUnset("gender", *p.Gender,
			func(f models.ContentFilters) *string { return f.Gender },
			models.GenderBoth))
	}
	if p.Age != nil {
		pred = append(pred, rangeOrUnset("age_range", float64(*p.Age),
			func(f models.ContentFilters) *models.RangeFilter { return f.AgeRange }))
	}
	if p.Weight != nil {
		pred = append(pred, rangeOrUnset("weight_range", *p.Weight,
			func(f models.ContentFilters) *models.RangeFilter { return f.WeightRange }))
	}
	if len(p.HealthConditions) > 0 {
		pred = append(pred, intersectsOrUnset("health_conditions", p.HealthConditions,
			func(f models.ContentFilters) []string { return f.HealthConditions }))
	}
	if p.ActivityLevel != nil {
		pred = append(pred, equalsOrUnset("activity_level", *p.ActivityLevel,
			func(f models.ContentFilters) *string { return f.ActivityLevel }))
	}
	if p.DietaryPreference != nil {
		pred = append(pred, equalsOrUnset("dietary_preference", *p.DietaryPreference,
			func(f models.ContentFilters) *string { return f.DietaryPreference }))
	}
	if len(p.PreferredWorkoutTypes) > 0 {
		pred = append(pred, intersectsOrUnset("preferred_workout_types", p.PreferredWorkoutTypes,
			func(f models.ContentFilters) []string { return f.PreferredWorkoutTypes }))
	}
	if len(p.DietaryRestrictions) > 0 {
		pred = append(pred, intersectsOrUnset("dietary_restrictions", p.DietaryRestrictions,
			func(f models.ContentFilters) []string { return f.DietaryRestrictions }))
	}

	return pred
}

// GoalOnly is the relaxed fallback filter for tips, facts and courses: match
// on fitness goal alone, dropping every other clause. A profile without a
// goal yields an unconditional filter.
func GoalOnly(p Profile) bson.M {
	if p.FitnessGoal == nil {
		return bson.M{}
	}
	return bson.M{"fitness_goal": *p.FitnessGoal}
}

// DefaultOnly matches the explicit default document of a category: every
// targeting attribute absent.
func DefaultOnly() bson.M {
	and := make(bson.A, 0, len(filterFields))
	for _, field := range filterFields {
		and = append(and, bson.M{field: bson.M{"$exists": false}})
	}
	return bson.M{"$and": and}
}

func equalsOrUnset(field, value string, get func(models.ContentFilters) *string, alsoAccept ...string) Clause {
	or := bson.A{bson.M{field: value}}
	for _, v := range alsoAccept {
		or = append(or, bson.M{field: v})
	}
	or = append(or, bson.M{field: bson.M{"$exists": false}})

	return Clause{
		filter: bson.M{"$or": or},
		matches: func(f models.ContentFilters) bool {
			got := get(f)
			if got == nil {
				return true
			}
			if *got == value {
				return true
			}
			for _, v := range alsoAccept {
				if *got == v {
					return true
				}
			}
			return false
		},
	}
}

func rangeOrUnset(field string, value float64, get func(models.ContentFilters) *models.RangeFilter) Clause {
	return Clause{
		filter: bson.M{"$or": bson.A{
			bson.M{field: bson.M{"$exists": false}},
			bson.M{"$and": bson.A{
				bson.M{field + ".min": bson.M{"$lte": value}},
				bson.M{field + ".max": bson.M{"$gte": value}},
			}},
		}},
		matches: func(f models.ContentFilters) bool {
			r := get(f)
			return r == nil || r.Contains(value)
		},
	}
}

func intersectsOrUnset(field string, values []string, get func(models.ContentFilters) []string) Clause {
	return Clause{
		filter: bson.M{"$or": bson.A{
			bson.M{field: bson.M{"$exists": false}},
			bson.M{field: bson.M{"$in": values}},
		}},
		matches: func(f models.ContentFilters) bool {
			got := get(f)
			if len(got) == 0 {
				return true
			}
			for _, have := range got {
				for _, want := range values {
					if have == want {
						return true
					}
				}
			}
			return false
		},
	}
}
