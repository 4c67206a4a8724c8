package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Exercise struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID      *string            `bson:"external_id,omitempty" json:"external_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Type            string             `bson:"type" json:"type"`
	MuscleGroup     string             `bson:"muscle_group" json:"muscle_group"`
	Difficulty      string             `bson:"difficulty" json:"difficulty"`
	EquipmentNeeded []string           `bson:"equipment_needed,omitempty" json:"equipment_needed,omitempty"`
	Instructions    []string           `bson:"instructions" json:"instructions"`
	GifURL          *string            `bson:"gif_url,omitempty" json:"gif_url,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type Macros struct {
	Protein float64 `bson:"protein" json:"protein"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
	Fats    float64 `bson:"fats" json:"fats"`
}

type Meal struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID       *string            `bson:"external_id,omitempty" json:"external_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Calories         int                `bson:"calories" json:"calories"`
	Macros           Macros             `bson:"macros" json:"macros"`
	DietaryTags      []string           `bson:"dietary_tags,omitempty" json:"dietary_tags,omitempty"`
	PrepInstructions string             `bson:"prep_instructions" json:"prep_instructions"`
	ImageURL         *string            `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
