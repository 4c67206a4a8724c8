package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/goals"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type UserGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type MetricsStore interface {
	EnsureForDate(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error)
	UpdateGoals(ctx context.Context, userID primitive.ObjectID, date time.Time, cfg goals.Config) (*models.UserMetrics, error)
	AddSteps(ctx context.Context, userID primitive.ObjectID, date time.Time, steps int, cfg goals.Config) (*models.UserMetrics, error)
	AddNutrition(ctx context.Context, userID primitive.ObjectID, date time.Time, kcal int, cfg goals.Config) (*models.UserMetrics, error)
	AddWater(ctx context.Context, userID primitive.ObjectID, date time.Time, liters float64, cfg goals.Config) (*models.UserMetrics, error)
	SetSleep(ctx context.Context, userID primitive.ObjectID, date time.Time, hours float64, cfg goals.Config) (*models.UserMetrics, error)
}

// MetricsService owns the per-day metrics document: lazy creation with
// profile-derived goals, goal refresh after profile changes, and the
// progress increments coming from activity logging.
type MetricsService struct {
	users   UserGetter
	metrics MetricsStore
}

func NewMetricsService(users UserGetter, metrics MetricsStore) *MetricsService {
	return &MetricsService{users: users, metrics: metrics}
}

// Today returns the canonical key for the current day's metrics document.
// All day bucketing is done in UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// GetUserMetrics returns today's metrics for the user, creating the
// document with freshly computed goals when it does not exist yet.
func (s *MetricsService) GetUserMetrics(ctx context.Context, userID primitive.ObjectID) (*models.UserMetrics, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.EnsureToday(ctx, user)
}

// EnsureToday makes sure today's metrics document exists for the user
// and returns it. Goals on an existing document are left untouched.
func (s *MetricsService) EnsureToday(ctx context.Context, user *models.User) (*models.UserMetrics, error) {
	cfg := goals.Compute(goals.InputFromUser(user))
	metrics, err := s.metrics.EnsureForDate(ctx, user.ID, Today(), cfg)
	if err != nil {
		return nil, fmt.Errorf("ensure daily metrics: %w", err)
	}
	return metrics, nil
}

// RefreshTodayGoals recomputes goal fields from the user's current
// profile and writes them onto today's document, preserving progress.
func (s *MetricsService) RefreshTodayGoals(ctx context.Context, user *models.User) (*models.UserMetrics, error) {
	cfg := goals.Compute(goals.InputFromUser(user))
	metrics, err := s.metrics.UpdateGoals(ctx, user.ID, Today(), cfg)
	if err != nil {
		return nil, fmt.Errorf("refresh daily goals: %w", err)
	}
	return metrics, nil
}

func (s *MetricsService) LogSteps(ctx context.Context, userID primitive.ObjectID, steps int) (*models.UserMetrics, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive", ErrInvalidInput)
	}
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := goals.Compute(goals.InputFromUser(user))
	return s.metrics.AddSteps(ctx, user.ID, Today(), steps, cfg)
}

func (s *MetricsService) LogWater(ctx context.Context, userID primitive.ObjectID, liters float64) (*models.UserMetrics, error) {
	if liters <= 0 {
		return nil, fmt.Errorf("%w: liters must be positive", ErrInvalidInput)
	}
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := goals.Compute(goals.InputFromUser(user))
	return s.metrics.AddWater(ctx, user.ID, Today(), liters, cfg)
}

func (s *MetricsService) LogSleep(ctx context.Context, userID primitive.ObjectID, hours float64) (*models.UserMetrics, error) {
	if hours < 0 || hours > 24 {
		return nil, fmt.Errorf("%w: sleep hours out of range", ErrInvalidInput)
	}
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := goals.Compute(goals.InputFromUser(user))
	return s.metrics.SetSleep(ctx, user.ID, Today(), hours, cfg)
}

func (s *MetricsService) addNutrition(ctx context.Context, user *models.User, kcal int) (*models.UserMetrics, error) {
	cfg := goals.Compute(goals.InputFromUser(user))
	return s.metrics.AddNutrition(ctx, user.ID, Today(), kcal, cfg)
}

func (s *MetricsService) resolveUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}
