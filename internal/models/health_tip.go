package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HealthTip struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Icon           string             `bson:"icon" json:"icon"`
	Image          *string            `bson:"image,omitempty" json:"image,omitempty"`
	Link           *string            `bson:"link,omitempty" json:"link,omitempty"`
	ContentFilters `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

type DidYouKnow struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fact           string             `bson:"fact" json:"fact"`
	Source         string             `bson:"source" json:"source"`
	Image          *string            `bson:"image,omitempty" json:"image,omitempty"`
	Link           *string            `bson:"link,omitempty" json:"link,omitempty"`
	ContentFilters `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
