package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type stubFeedStore struct {
	posts    map[primitive.ObjectID]*models.FeedPost
	likes    []string
	comments []models.FeedComment
}

func newStubFeedStore(posts ...*models.FeedPost) *stubFeedStore {
	store := &stubFeedStore{posts: make(map[primitive.ObjectID]*models.FeedPost)}
	for _, post := range posts {
		store.posts[post.ID] = post
	}
	return store
}

func (s *stubFeedStore) List(ctx context.Context, limit int64) ([]models.FeedPost, error) {
	result := make([]models.FeedPost, 0, len(s.posts))
	for _, post := range s.posts {
		result = append(result, *post)
	}
	return result, nil
}

func (s *stubFeedStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FeedPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *stubFeedStore) Create(ctx context.Context, post *models.FeedPost) error {
	post.ID = primitive.NewObjectID()
	s.posts[post.ID] = post
	return nil
}

func (s *stubFeedStore) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.FeedPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if content, ok := set["content"].(string); ok {
		post.Content = content
	}
	copied := *post
	return &copied, nil
}

func (s *stubFeedStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *stubFeedStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.likes = append(s.likes, "add")
	post.Likes = append(post.Likes, userID)
	copied := *post
	return &copied, nil
}

func (s *stubFeedStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*models.FeedPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.likes = append(s.likes, "remove")
	kept := post.Likes[:0]
	for _, like := range post.Likes {
		if like != userID {
			kept = append(kept, like)
		}
	}
	post.Likes = kept
	copied := *post
	return &copied, nil
}

func (s *stubFeedStore) AddComment(ctx context.Context, id primitive.ObjectID, comment models.FeedComment) (*models.FeedPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.comments = append(s.comments, comment)
	post.Comments = append(post.Comments, comment)
	copied := *post
	return &copied, nil
}

func feedTestUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
}

func TestCreatePostRejectsEmptyContent(t *testing.T) {
	user := feedTestUser()
	service := NewFeedService(newStubFeedStore(), &stubUserStore{user: user})

	_, err := service.CreatePost(context.Background(), user.ID, CreatePostInput{Content: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	owner := feedTestUser()
	intruder := feedTestUser()
	post := &models.FeedPost{ID: primitive.NewObjectID(), UserID: owner.ID, Content: "original"}
	store := newStubFeedStore(post)
	service := NewFeedService(store, &stubUserStore{user: owner})

	content := "edited"
	_, err := service.UpdatePost(context.Background(), intruder.ID, post.ID, UpdatePostInput{Content: &content})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("Expected ErrNotAuthorized for non-owner, got %v", err)
	}

	updated, err := service.UpdatePost(context.Background(), owner.ID, post.ID, UpdatePostInput{Content: &content})
	if err != nil {
		t.Fatalf("Expected owner edit to pass, got %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("Expected updated content, got %q", updated.Content)
	}
}

func TestDeletePostOwnerOnly(t *testing.T) {
	owner := feedTestUser()
	intruder := feedTestUser()
	post := &models.FeedPost{ID: primitive.NewObjectID(), UserID: owner.ID, Content: "hello"}
	store := newStubFeedStore(post)
	service := NewFeedService(store, &stubUserStore{user: owner})

	if err := service.DeletePost(context.Background(), intruder.ID, post.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("Expected ErrNotAuthorized, got %v", err)
	}
	if err := service.DeletePost(context.Background(), owner.ID, post.ID); err != nil {
		t.Fatalf("Expected owner delete to pass, got %v", err)
	}
	if _, err := store.GetByID(context.Background(), post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected post to be gone")
	}
}

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	user := feedTestUser()
	post := &models.FeedPost{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Content: "hi"}
	store := newStubFeedStore(post)
	service := NewFeedService(store, &stubUserStore{user: user})

	view, err := service.ToggleLike(context.Background(), user.ID, post.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !view.LikedByCurrentUser || view.LikeCount != 1 {
		t.Errorf("Expected liked view, got liked=%v count=%d", view.LikedByCurrentUser, view.LikeCount)
	}

	view, err = service.ToggleLike(context.Background(), user.ID, post.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if view.LikedByCurrentUser || view.LikeCount != 0 {
		t.Errorf("Expected unliked view, got liked=%v count=%d", view.LikedByCurrentUser, view.LikeCount)
	}

	if len(store.likes) != 2 || store.likes[0] != "add" || store.likes[1] != "remove" {
		t.Errorf("Expected add then remove, got %v", store.likes)
	}
}

func TestCommentPostAppends(t *testing.T) {
	user := feedTestUser()
	post := &models.FeedPost{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Content: "hi"}
	store := newStubFeedStore(post)
	service := NewFeedService(store, &stubUserStore{user: user})

	view, err := service.CommentPost(context.Background(), user.ID, post.ID, "  nice work  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view.Comments) != 1 {
		t.Fatalf("Expected one comment, got %d", len(view.Comments))
	}
	if view.Comments[0].Comment != "nice work" {
		t.Errorf("Expected trimmed comment, got %q", view.Comments[0].Comment)
	}
	if view.Comments[0].UserID != user.ID {
		t.Errorf("Comment must carry the author id")
	}
}
