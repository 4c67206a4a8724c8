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

type stubUserStore struct {
	user *models.User
	err  error
}

func (s *stubUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type tipQuery struct {
	filter bson.M
	limit  int64
}

type stubTipStore struct {
	queries   []tipQuery
	responses [][]models.HealthTip
}

func (s *stubTipStore) Find(ctx context.Context, filter bson.M, limit int64) ([]models.HealthTip, error) {
	s.queries = append(s.queries, tipQuery{filter: filter, limit: limit})
	if len(s.responses) == 0 {
		return nil, nil
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func (s *stubTipStore) Create(ctx context.Context, tip *models.HealthTip) error {
	return errors.New("not implemented")
}

func (s *stubTipStore) Update(ctx context.Context, id primitive.ObjectID, tip models.HealthTip) (*models.HealthTip, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTipStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errors.New("not implemented")
}

func profiledUser(goal string) *models.User {
	age := 34
	return &models.User{
		ID:          primitive.NewObjectID(),
		Role:        models.RoleUser,
		FitnessGoal: &goal,
		Age:         &age,
	}
}

func TestGetHealthTipsUsesFullPredicate(t *testing.T) {
	user := profiledUser(models.GoalLoseWeight)
	tips := &stubTipStore{responses: [][]models.HealthTip{
		{{Title: "Walk after meals"}},
	}}
	service := NewContentService(&stubUserStore{user: user}, nil, tips, nil)

	result, err := service.GetHealthTips(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].Title != "Walk after meals" {
		t.Fatalf("Unexpected result: %+v", result)
	}

	if len(tips.queries) != 1 {
		t.Fatalf("Expected a single query, got %d", len(tips.queries))
	}
	if tips.queries[0].limit != healthTipLimit {
		t.Errorf("Expected limit %d, got %d", healthTipLimit, tips.queries[0].limit)
	}
	if _, ok := tips.queries[0].filter["$and"]; !ok {
		t.Errorf("Expected layered predicate, got %v", tips.queries[0].filter)
	}
}

func TestGetHealthTipsFallsBackToGoalOnly(t *testing.T) {
	user := profiledUser(models.GoalGainMuscle)
	tips := &stubTipStore{responses: [][]models.HealthTip{
		nil,
		{{Title: "Protein with breakfast"}},
	}}
	service := NewContentService(&stubUserStore{user: user}, nil, tips, nil)

	result, err := service.GetHealthTips(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected fallback result, got %+v", result)
	}

	if len(tips.queries) != 2 {
		t.Fatalf("Expected two queries, got %d", len(tips.queries))
	}
	fallback := tips.queries[1].filter
	if fallback["fitness_goal"] != models.GoalGainMuscle {
		t.Errorf("Expected goal-only fallback filter, got %v", fallback)
	}
	if _, ok := fallback["$and"]; ok {
		t.Errorf("Fallback must drop the layered clauses, got %v", fallback)
	}
}

func TestGetHealthTipsBothQueriesEmpty(t *testing.T) {
	user := profiledUser(models.GoalLoseWeight)
	tips := &stubTipStore{responses: [][]models.HealthTip{nil, nil}}
	service := NewContentService(&stubUserStore{user: user}, nil, tips, nil)

	result, err := service.GetHealthTips(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result after both queries, got %+v", result)
	}
	if len(tips.queries) != 2 {
		t.Errorf("Expected exactly two queries, got %d", len(tips.queries))
	}
}

func TestGetHealthTipsUnknownUser(t *testing.T) {
	service := NewContentService(&stubUserStore{err: repository.ErrNotFound}, nil, &stubTipStore{}, nil)

	_, err := service.GetHealthTips(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetAllHealthTipsRequiresAdmin(t *testing.T) {
	user := profiledUser(models.GoalLoseWeight)
	service := NewContentService(&stubUserStore{user: user}, nil, &stubTipStore{}, nil)

	_, err := service.GetAllHealthTips(context.Background(), user.ID, "")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Expected ErrNotAuthorized for non-admin, got %v", err)
	}
}

func TestGetAllHealthTipsAdminBypassesPersonalization(t *testing.T) {
	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	tips := &stubTipStore{responses: [][]models.HealthTip{
		{{Title: "A"}, {Title: "B"}},
	}}
	service := NewContentService(&stubUserStore{user: admin}, nil, tips, nil)

	result, err := service.GetAllHealthTips(context.Background(), admin.ID, "sleep")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected both tips, got %d", len(result))
	}

	query := tips.queries[0]
	if query.limit != 0 {
		t.Errorf("Admin listing must be unlimited, got limit %d", query.limit)
	}
	if query.filter["category"] != "sleep" {
		t.Errorf("Expected category equality filter, got %v", query.filter)
	}
	if _, ok := query.filter["$and"]; ok {
		t.Errorf("Admin listing must not use the layered predicate")
	}
}
