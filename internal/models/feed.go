package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedComment struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type FeedPost struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID   `bson:"user_id" json:"user_id"`
	Content       string               `bson:"content" json:"content"`
	Image         *string              `bson:"image,omitempty" json:"image,omitempty"`
	Likes         []primitive.ObjectID `bson:"likes" json:"-"`
	Comments      []FeedComment        `bson:"comments" json:"comments"`
	ActivityType  *string              `bson:"activity_type,omitempty" json:"activity_type,omitempty"`
	ActivityValue *string              `bson:"activity_value,omitempty" json:"activity_value,omitempty"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
}

// FeedPostView decorates a post with the viewer-dependent like fields.
type FeedPostView struct {
	FeedPost
	LikeCount          int  `json:"likes"`
	LikedByCurrentUser bool `json:"liked_by_current_user"`
}
