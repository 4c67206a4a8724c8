package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/goals"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type metricsCall struct {
	op    string
	steps int
	kcal  int
	value float64
	cfg   goals.Config
}

type stubMetricsStore struct {
	calls []metricsCall
}

func (s *stubMetricsStore) record(call metricsCall) *models.UserMetrics {
	s.calls = append(s.calls, call)
	return &models.UserMetrics{}
}

func (s *stubMetricsStore) EnsureForDate(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "ensure", cfg: cfg}), nil
}

func (s *stubMetricsStore) UpdateGoals(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "update_goals", cfg: cfg}), nil
}

func (s *stubMetricsStore) AddSteps(ctx context.Context, userID primitive.ObjectID, date time.Time, steps int, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "add_steps", steps: steps, cfg: cfg}), nil
}

func (s *stubMetricsStore) AddNutrition(ctx context.Context, userID primitive.ObjectID, date time.Time, kcal int, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "add_nutrition", kcal: kcal, cfg: cfg}), nil
}

func (s *stubMetricsStore) AddWater(ctx context.Context, userID primitive.ObjectID, date time.Time, liters float64, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "add_water", value: liters, cfg: cfg}), nil
}

func (s *stubMetricsStore) SetSleep(ctx context.Context, userID primitive.ObjectID, date time.Time, hours float64, cfg goals.Config) (*models.UserMetrics, error) {
	return s.record(metricsCall{op: "set_sleep", value: hours, cfg: cfg}), nil
}

func metricsUser() *models.User {
	age := 30
	weight := 70.0
	height := 170.0
	gender := models.GenderMale
	goal := models.GoalMaintainHealth
	level := models.ActivityModerate
	return &models.User{
		ID:            primitive.NewObjectID(),
		Role:          models.RoleUser,
		Age:           &age,
		Weight:        &weight,
		Height:        &height,
		Gender:        &gender,
		FitnessGoal:   &goal,
		ActivityLevel: &level,
	}
}

func TestGetUserMetricsEnsuresTodayWithProfileGoals(t *testing.T) {
	user := metricsUser()
	store := &stubMetricsStore{}
	service := NewMetricsService(&stubUserStore{user: user}, store)

	if _, err := service.GetUserMetrics(context.Background(), user.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(store.calls) != 1 || store.calls[0].op != "ensure" {
		t.Fatalf("Expected a single ensure call, got %+v", store.calls)
	}

	want := goals.Compute(goals.InputFromUser(user))
	if store.calls[0].cfg != want {
		t.Errorf("Expected goal config %+v, got %+v", want, store.calls[0].cfg)
	}
}

func TestGetUserMetricsUnknownUser(t *testing.T) {
	service := NewMetricsService(&stubUserStore{err: repository.ErrNotFound}, &stubMetricsStore{})

	_, err := service.GetUserMetrics(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestLogStepsRejectsNonPositive(t *testing.T) {
	user := metricsUser()
	store := &stubMetricsStore{}
	service := NewMetricsService(&stubUserStore{user: user}, store)

	for _, steps := range []int{0, -100} {
		if _, err := service.LogSteps(context.Background(), user.ID, steps); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Steps %d: expected ErrInvalidInput, got %v", steps, err)
		}
	}
	if len(store.calls) != 0 {
		t.Errorf("Invalid input must not reach the store, got %+v", store.calls)
	}
}

func TestLogStepsRecordsIncrement(t *testing.T) {
	user := metricsUser()
	store := &stubMetricsStore{}
	service := NewMetricsService(&stubUserStore{user: user}, store)

	if _, err := service.LogSteps(context.Background(), user.ID, 2500); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(store.calls) != 1 || store.calls[0].op != "add_steps" || store.calls[0].steps != 2500 {
		t.Fatalf("Unexpected store calls: %+v", store.calls)
	}
}

func TestLogSleepBounds(t *testing.T) {
	user := metricsUser()
	store := &stubMetricsStore{}
	service := NewMetricsService(&stubUserStore{user: user}, store)

	if _, err := service.LogSleep(context.Background(), user.ID, 25); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("25 hours: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.LogSleep(context.Background(), user.ID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Negative hours: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.LogSleep(context.Background(), user.ID, 7.5); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(store.calls) != 1 || store.calls[0].op != "set_sleep" || store.calls[0].value != 7.5 {
		t.Fatalf("Unexpected store calls: %+v", store.calls)
	}
}

func TestTodayIsUTCMidnight(t *testing.T) {
	today := Today()
	if today.Location() != time.UTC {
		t.Errorf("Expected UTC, got %v", today.Location())
	}
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("Expected midnight, got %v", today)
	}
}
