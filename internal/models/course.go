package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type CourseStep struct {
	ID           string  `bson:"id" json:"id"`
	Title        string  `bson:"title" json:"title"`
	Content      string  `bson:"content" json:"content"`
	Illustration *string `bson:"illustration,omitempty" json:"illustration,omitempty"`
	VideoURL     *string `bson:"video_url,omitempty" json:"video_url,omitempty"`
}

type CourseTopic struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description *string      `bson:"description,omitempty" json:"description,omitempty"`
	Steps       []CourseStep `bson:"steps" json:"steps"`
}

type Course struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Level          string             `bson:"level" json:"level"`
	CoverImage     *string            `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Topics         []CourseTopic      `bson:"topics,omitempty" json:"topics,omitempty"`
	ContentFilters `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
