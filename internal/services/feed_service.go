package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type FeedStore interface {
	List(ctx context.Context, limit int64) ([]models.FeedPost, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.FeedPost, error)
	Create(ctx context.Context, post *models.FeedPost) error
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.FeedPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error)
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error)
	AddComment(ctx context.Context, id primitive.ObjectID, comment models.FeedComment) (*models.FeedPost, error)
}

// FeedService manages the social activity feed: posts, owner-only edits
// and deletes, like toggling and comments.
type FeedService struct {
	posts FeedStore
	users UserGetter
}

func NewFeedService(posts FeedStore, users UserGetter) *FeedService {
	return &FeedService{posts: posts, users: users}
}

type CreatePostInput struct {
	Content       string  `json:"content"`
	Image         *string `json:"image"`
	ActivityType  *string `json:"activity_type"`
	ActivityValue *string `json:"activity_value"`
}

type UpdatePostInput struct {
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

func (s *FeedService) GetFeed(ctx context.Context, viewerID primitive.ObjectID, limit int64) ([]models.FeedPostView, error) {
	posts, err := s.posts.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]models.FeedPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, viewOf(post, viewerID))
	}
	return views, nil
}

func (s *FeedService) GetPost(ctx context.Context, viewerID, postID primitive.ObjectID) (*models.FeedPostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := viewOf(*post, viewerID)
	return &view, nil
}

func (s *FeedService) CreatePost(ctx context.Context, userID primitive.ObjectID, input CreatePostInput) (*models.FeedPostView, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: post content is required", ErrInvalidInput)
	}
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	post := &models.FeedPost{
		UserID:        userID,
		Content:       strings.TrimSpace(input.Content),
		Image:         input.Image,
		ActivityType:  input.ActivityType,
		ActivityValue: input.ActivityValue,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	view := viewOf(*post, userID)
	return &view, nil
}

// UpdatePost applies a partial edit. Only the post owner may edit.
func (s *FeedService) UpdatePost(ctx context.Context, userID, postID primitive.ObjectID, input UpdatePostInput) (*models.FeedPostView, error) {
	if err := s.requireOwner(ctx, userID, postID); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, fmt.Errorf("%w: post content is required", ErrInvalidInput)
		}
		set["content"] = strings.TrimSpace(*input.Content)
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}

	post, err := s.posts.UpdateFields(ctx, postID, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := viewOf(*post, userID)
	return &view, nil
}

func (s *FeedService) DeletePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	if err := s.requireOwner(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ToggleLike likes the post, or removes the caller's existing like.
func (s *FeedService) ToggleLike(ctx context.Context, userID, postID primitive.ObjectID) (*models.FeedPostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if hasLike(post.Likes, userID) {
		post, err = s.posts.RemoveLike(ctx, postID, userID)
	} else {
		post, err = s.posts.AddLike(ctx, postID, userID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := viewOf(*post, userID)
	return &view, nil
}

func (s *FeedService) CommentPost(ctx context.Context, userID, postID primitive.ObjectID, comment string) (*models.FeedPostView, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	post, err := s.posts.AddComment(ctx, postID, models.FeedComment{
		UserID:    userID,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := viewOf(*post, userID)
	return &view, nil
}

func (s *FeedService) requireOwner(ctx context.Context, userID, postID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if post.UserID != userID {
		return ErrNotAuthorized
	}
	return nil
}

func (s *FeedService) resolveUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

func viewOf(post models.FeedPost, viewerID primitive.ObjectID) models.FeedPostView {
	return models.FeedPostView{
		FeedPost:           post,
		LikeCount:          len(post.Likes),
		LikedByCurrentUser: hasLike(post.Likes, viewerID),
	}
}

func hasLike(likes []primitive.ObjectID, userID primitive.ObjectID) bool {
	for _, id := range likes {
		if id == userID {
			return true
		}
	}
	return false
}
